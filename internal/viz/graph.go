package viz

import (
	"github.com/guptarohit/asciigraph"
)

// PopulationGraph plots a population history. It returns "" when there is
// nothing to plot.
func PopulationGraph(population []int, width, height int, caption string) string {
	if len(population) == 0 {
		return ""
	}
	data := make([]float64, len(population))
	for i, p := range population {
		data[i] = float64(p)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
