package validation

// MarkerSymbols is the full plotly marker symbol set accepted by the style form.
var MarkerSymbols = []string{
	"arrow", "arrow-bar-down", "arrow-bar-down-open", "arrow-bar-left",
	"arrow-bar-left-open", "arrow-bar-right", "arrow-bar-right-open",
	"arrow-bar-up", "arrow-bar-up-open", "arrow-down", "arrow-down-open",
	"arrow-left", "arrow-left-open", "arrow-open", "arrow-right",
	"arrow-right-open", "arrow-up", "arrow-up-open", "arrow-wide",
	"arrow-wide-open", "asterisk", "asterisk-open", "bowtie", "bowtie-open",
	"circle", "circle-cross", "circle-cross-open", "circle-dot", "circle-open",
	"circle-open-dot", "circle-x", "circle-x-open", "cross", "cross-dot",
	"cross-open", "cross-open-dot", "cross-thin", "cross-thin-open", "diamond",
	"diamond-cross", "diamond-cross-open", "diamond-dot", "diamond-open",
	"diamond-open-dot", "diamond-tall", "diamond-tall-dot", "diamond-tall-open",
	"diamond-tall-open-dot", "diamond-wide", "diamond-wide-dot",
	"diamond-wide-open", "diamond-wide-open-dot", "diamond-x", "diamond-x-open",
	"hash", "hash-dot", "hash-open", "hash-open-dot", "hexagon", "hexagon2",
	"hexagon2-dot", "hexagon2-open", "hexagon2-open-dot", "hexagon-dot",
	"hexagon-open", "hexagon-open-dot", "hexagram", "hexagram-dot",
	"hexagram-open", "hexagram-open-dot", "hourglass", "hourglass-open",
	"line-ew", "line-ew-open", "line-ne", "line-ne-open", "line-ns",
	"line-ns-open", "line-nw", "line-nw-open", "octagon", "octagon-dot",
	"octagon-open", "octagon-open-dot", "pentagon", "pentagon-dot",
	"pentagon-open", "pentagon-open-dot", "square", "square-cross",
	"square-cross-open", "square-dot", "square-open", "square-open-dot",
	"square-x", "square-x-open", "star", "star-diamond", "star-diamond-dot",
	"star-diamond-open", "star-diamond-open-dot", "star-dot", "star-open",
	"star-open-dot", "star-square", "star-square-dot", "star-square-open",
	"star-square-open-dot", "star-triangle-down", "star-triangle-down-dot",
	"star-triangle-down-open", "star-triangle-down-open-dot",
	"star-triangle-up", "star-triangle-up-dot", "star-triangle-up-open",
	"star-triangle-up-open-dot", "triangle-down", "triangle-down-dot",
	"triangle-down-open", "triangle-down-open-dot", "triangle-left",
	"triangle-left-dot", "triangle-left-open", "triangle-left-open-dot",
	"triangle-ne", "triangle-ne-dot", "triangle-ne-open",
	"triangle-ne-open-dot", "triangle-nw", "triangle-nw-dot",
	"triangle-nw-open", "triangle-nw-open-dot", "triangle-right",
	"triangle-right-dot", "triangle-right-open", "triangle-right-open-dot",
	"triangle-se", "triangle-se-dot", "triangle-se-open",
	"triangle-se-open-dot", "triangle-sw", "triangle-sw-dot",
	"triangle-sw-open", "triangle-sw-open-dot", "triangle-up",
	"triangle-up-dot", "triangle-up-open", "triangle-up-open-dot", "x",
	"x-dot", "x-open", "x-open-dot", "x-thin", "x-thin-open", "y-down",
	"y-down-open", "y-left", "y-left-open", "y-right", "y-right-open", "y-up",
	"y-up-open",
}

var markerSymbolSet = func() map[string]bool {
	set := make(map[string]bool, len(MarkerSymbols))
	for _, s := range MarkerSymbols {
		set[s] = true
	}
	return set
}()
