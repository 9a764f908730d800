package cli

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geograph"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/spatial"
)

func newRouteCmd(g *globals) *cobra.Command {
	var (
		astar     bool
		heuristic float64
		factor    float64
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the cheapest path between two sites",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, mode, err := g.load(cmd)
			if err != nil {
				return err
			}
			from, err := net.site(args[0])
			if err != nil {
				return err
			}
			to, err := net.site(args[1])
			if err != nil {
				return err
			}

			cfg := geograph.DefaultConfig()
			cfg.Mode = mode
			cfg.HeuristicWeight = heuristic
			cfg.Factor = factor

			var alg geograph.Algorithm[dijkstra.Path[Site]]
			if astar {
				alg, err = geograph.NewAStar(net.graph, from, to, cfg)
			} else {
				alg, err = geograph.NewDijkstra(net.graph, from, to, cfg)
			}
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			if err := alg.Execute(); err != nil {
				return err
			}
			path := alg.Result()
			p.done("route searched", "astar", astar)

			out := cmd.OutOrStdout()
			if !path.Valid {
				fmt.Fprintf(out, "no route from %s to %s\n", from, to)
				return nil
			}
			hops := make([]string, len(path.Nodes))
			for i, n := range path.Nodes {
				hops[i] = n.Name
			}
			fmt.Fprintf(out, "%s\n", strings.Join(hops, " -> "))
			fmt.Fprintf(out, "weight %s\n", formatWeight(path.Weight))
			return nil
		},
	}
	cmd.Flags().BoolVar(&astar, "astar", false, "use A* with the straight-line heuristic")
	cmd.Flags().Float64Var(&heuristic, "heuristic-weight", 1, "A* heuristic multiplier")
	cmd.Flags().Float64Var(&factor, "factor", 1, "A* distance-to-weight factor")
	return cmd
}

func newReachCmd(g *globals) *cobra.Command {
	var (
		bound float64
		exact bool
	)
	cmd := &cobra.Command{
		Use:   "reach ORIGIN",
		Short: "List sites within a distance of ORIGIN",
		Long: `reach lists every site within --max of ORIGIN with its distance.
By default it runs a FIFO breadth-first walk, whose distances are exact on
uniform weights only; --exact runs a bounded Dijkstra instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, mode, err := g.load(cmd)
			if err != nil {
				return err
			}
			origin, err := net.site(args[0])
			if err != nil {
				return err
			}

			cfg := geograph.DefaultConfig()
			cfg.Mode = mode
			cfg.MaxDistance = bound

			var alg geograph.Algorithm[map[Site]float64]
			if exact {
				alg, err = geograph.NewWithinDistance(net.graph, origin, cfg)
			} else {
				alg, err = geograph.NewBoundedBFS(net.graph, origin, cfg)
			}
			if err != nil {
				return err
			}
			if err := alg.Execute(); err != nil {
				return err
			}

			reached := alg.Result()
			sites := make([]Site, 0, len(reached))
			for s := range reached {
				sites = append(sites, s)
			}
			slices.SortFunc(sites, func(a, b Site) int {
				if c := cmp.Compare(reached[a], reached[b]); c != 0 {
					return c
				}
				return strings.Compare(a.Name, b.Name)
			})
			out := cmd.OutOrStdout()
			for _, s := range sites {
				fmt.Fprintf(out, "%s\t%s\n", s.Name, formatWeight(reached[s]))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&bound, "max", math.Inf(1), "distance bound")
	cmd.Flags().BoolVar(&exact, "exact", false, "use bounded Dijkstra instead of BFS")
	return cmd
}

func newIsochroneCmd(g *globals) *cobra.Command {
	var (
		bound    float64
		frontier bool
	)
	cmd := &cobra.Command{
		Use:   "isochrone ORIGIN",
		Short: "Print the coverage leaves reachable from ORIGIN within --max",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, mode, err := g.load(cmd)
			if err != nil {
				return err
			}
			origin, err := net.site(args[0])
			if err != nil {
				return err
			}

			cfg := geograph.DefaultConfig()
			cfg.Mode = mode
			cfg.MaxDistance = bound

			alg, err := geograph.NewCoverage(net.graph, origin, cfg)
			if err != nil {
				return err
			}
			if err := alg.Execute(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range alg.Result() {
				if !frontier && r.Weight > bound {
					continue
				}
				hops := make([]string, 0, 4)
				for _, n := range r.Path() {
					hops = append(hops, n.Name)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.Node.Name, formatWeight(r.Weight), strings.Join(hops, " -> "))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&bound, "max", math.Inf(1), "distance bound")
	cmd.Flags().BoolVar(&frontier, "frontier", false, "also print leaves past the bound")
	return cmd
}

func newNearestCmd(g *globals) *cobra.Command {
	var (
		k      int
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "nearest X Y",
		Short: "List the sites closest to a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			net, _, err := g.load(cmd)
			if err != nil {
				return err
			}

			pt := spatial.Pt(x, y)
			out := cmd.OutOrStdout()
			for _, s := range net.graph.Nearest(pt, k, radius) {
				fmt.Fprintf(out, "%s\t%s\n", s.Name, formatWeight(spatial.Distance(pt, s)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 1, "number of sites")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 1, "search radius")
	return cmd
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
