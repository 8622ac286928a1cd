package tracked

import (
	"math"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/membridge/bridge"
	"github.com/vkngwrapper/membridge/memutils"
	"golang.org/x/exp/slices"
)

// CalculateStatistics overwrites stats with totals over every live block
func (r *Registry) CalculateStatistics(stats *memutils.Statistics) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stats.Clear()
	r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
		stats.AddBlock(block.size, block.reserved)
		return false
	})
}

// CalculateDetailedStatistics overwrites stats with totals and size extremes over every live block
func (r *Registry) CalculateDetailedStatistics(stats *memutils.DetailedStatistics) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	r.calculateDetailedStatistics(stats)
}

func (r *Registry) calculateDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.Clear()
	r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
		stats.AddBlock(block.size, block.reserved)
		return false
	})
}

// BuildStatsString returns a JSON document describing the registry. If detailed is true, it includes
// every live block ordered by handle.
func (r *Registry) BuildStatsString(detailed bool) string {
	r.logger.Debug("Registry::BuildStatsString")

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	// Totals and the block list must come from the same snapshot of the live map
	var stats memutils.DetailedStatistics
	r.calculateDetailedStatistics(&stats)

	writer := jwriter.NewWriter()
	obj := writer.Object()

	general := obj.Name("General").Object()
	general.Name("Flags").String(r.createFlags.String())
	writeUint64(general.Name("HeapSizeLimit"), r.heapSizeLimit)
	general.Name("RetiredHandles").Int(r.retired.Count())
	general.Name("Destroyed").Bool(r.destroyed)
	general.End()

	total := obj.Name("Total").Object()
	printStatistics(&total, &stats)
	total.End()

	if detailed {
		handles := make([]bridge.Handle, 0, r.live.Count())
		r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
			handles = append(handles, handle)
			return false
		})
		slices.Sort(handles)

		blocks := obj.Name("Blocks").Array()
		for _, handle := range handles {
			block, _ := r.live.Get(handle)

			o := blocks.Object()
			block.printParameters(&o, handle)
			o.End()
		}
		blocks.End()
	}

	obj.End()
	return string(writer.Bytes())
}

func printStatistics(json *jwriter.ObjectState, stats *memutils.DetailedStatistics) {
	json.Name("BlockCount").Int(stats.BlockCount)
	writeUint64(json.Name("BlockBytes"), stats.BlockBytes)
	json.Name("AllocationCount").Int(stats.AllocationCount)
	writeUint64(json.Name("AllocationBytes"), stats.AllocationBytes)
	json.Name("ZeroSizeCount").Int(stats.ZeroSizeCount)

	if stats.AllocationCount > 0 {
		writeUint64(json.Name("AllocationSizeMin"), stats.AllocationSizeMin)
		writeUint64(json.Name("AllocationSizeMax"), stats.AllocationSizeMax)
	}
}

func (b *liveBlock) printParameters(json *jwriter.ObjectState, handle bridge.Handle) {
	json.Name("Handle").String(handle.String())
	writeUint64(json.Name("Size"), b.size)
	writeUint64(json.Name("Sequence"), b.sequence)

	if b.name != "" {
		json.Name("Name").String(b.name)
	}

	if b.userData != nil {
		json.Name("CustomData").String(b.customData())
	}
}

// jwriter has no unsigned writer; values past MaxInt fall back to floats
func writeUint64(w *jwriter.Writer, value uint64) {
	if value <= math.MaxInt {
		w.Int(int(value))
		return
	}

	w.Float64(float64(value))
}
