package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/spatial"
)

var (
	errBadNetwork  = errors.New("invalid network")
	errUnknownSite = errors.New("unknown site")
	errUnknownMode = errors.New("unknown mode")
)

// Site is a named point of a network file.
type Site struct {
	Name string
	PX   float64
	PY   float64
}

// X returns the site's x coordinate.
func (s Site) X() float64 { return s.PX }

// Y returns the site's y coordinate.
func (s Site) Y() float64 { return s.PY }

// String returns the site name.
func (s Site) String() string { return s.Name }

// networkFile is the on-disk TOML layout:
//
//	modes = ["car", "foot"]
//
//	[grid]
//	min_x = 0
//	min_y = 0
//	max_x = 100
//	max_y = 100
//	resolution = 10
//
//	[[site]]
//	name = "depot"
//	x = 3
//	y = 4
//
//	[[edge]]
//	from = "depot"
//	to = "harbor"
//	label = "a1"
//	weights = [4.5, 12]
//	oneway = false
type networkFile struct {
	Modes []string   `toml:"modes"`
	Grid  gridFile   `toml:"grid"`
	Sites []siteFile `toml:"site"`
	Edges []edgeFile `toml:"edge"`
}

type gridFile struct {
	MinX       float64 `toml:"min_x"`
	MinY       float64 `toml:"min_y"`
	MaxX       float64 `toml:"max_x"`
	MaxY       float64 `toml:"max_y"`
	Resolution int     `toml:"resolution"`
}

type siteFile struct {
	Name string  `toml:"name"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

type edgeFile struct {
	From    string    `toml:"from"`
	To      string    `toml:"to"`
	Label   string    `toml:"label"`
	Weights []float64 `toml:"weights"`
	Oneway  bool      `toml:"oneway"`
}

// network is a loaded, built network.
type network struct {
	graph *core.Graph[Site]
	sites map[string]Site
	modes []string
}

// loadNetwork reads and builds the network at path.
func loadNetwork(path string, logger *log.Logger) (*network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeNetwork(f, logger)
}

// decodeNetwork parses a TOML network and builds its graph. Unknown keys
// are rejected so typos do not silently drop data.
func decodeNetwork(r io.Reader, logger *log.Logger) (*network, error) {
	var nf networkFile
	md, err := toml.NewDecoder(r).Decode(&nf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadNetwork, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", errBadNetwork, strings.Join(keys, ", "))
	}

	sites := make(map[string]Site, len(nf.Sites))
	for _, s := range nf.Sites {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: site without name at (%g, %g)", errBadNetwork, s.X, s.Y)
		}
		if _, dup := sites[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate site %q", errBadNetwork, s.Name)
		}
		sites[s.Name] = Site{Name: s.Name, PX: s.X, PY: s.Y}
	}

	bounds := spatial.Rect{MinX: nf.Grid.MinX, MinY: nf.Grid.MinY, MaxX: nf.Grid.MaxX, MaxY: nf.Grid.MaxY}
	b, err := core.NewBuilder[Site](bounds, nf.Grid.Resolution,
		core.WithCapacity(len(sites)), core.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadNetwork, err)
	}

	for i, e := range nf.Edges {
		from, ok := sites[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w %q", i, errUnknownSite, e.From)
		}
		to, ok := sites[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w %q", i, errUnknownSite, e.To)
		}
		if len(e.Weights) == 0 {
			return nil, fmt.Errorf("%w: edge %d has no weights", errBadNetwork, i)
		}
		w := weightOf(e.Weights)
		if e.Oneway {
			err = b.AddEdge(from, to, e.Label, w)
		} else {
			err = b.AddBidirectional(from, to, e.Label, w)
		}
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadNetwork, err)
	}
	logger.Debug("network loaded", "sites", len(sites), "edges", g.EdgeCount(), "modes", len(nf.Modes))
	return &network{graph: g, sites: sites, modes: nf.Modes}, nil
}

func weightOf(values []float64) core.Weight {
	if len(values) == 1 {
		return core.Scalar(values[0])
	}
	return core.Modal(values)
}

// site resolves a site name.
func (n *network) site(name string) (Site, error) {
	s, ok := n.sites[name]
	if !ok {
		return Site{}, fmt.Errorf("%w %q", errUnknownSite, name)
	}
	return s, nil
}

// mode resolves a mode given by name or by index.
func (n *network) mode(name string) (int, error) {
	for i, m := range n.modes {
		if m == name {
			return i, nil
		}
	}
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w %q", errUnknownMode, name)
	}
	return i, nil
}
