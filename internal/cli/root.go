// Package cli provides the routeplan command: a one-shot host for the route
// optimizer that reads points from arguments or a JSON file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"round-trip-planner/internal/adapters/distance"
	"round-trip-planner/internal/adapters/pointsfile"
	"round-trip-planner/internal/config"
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/ports"
	"round-trip-planner/internal/services"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var ErrNoHome = errors.New("no home location set")

var totalStyle = lipgloss.NewStyle().Bold(true)

type options struct {
	file      string
	selection string
	maxStops  int
}

// NewRootCmd builds the routeplan command. Defaults for --select and
// --max-stops come from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{
		selection: cfg.Selection,
		maxStops:  cfg.MaxStops,
	}

	cmd := &cobra.Command{
		Use:   "routeplan [lng,lat ...]",
		Short: "Plan a round trip through a set of stops",
		Long: `routeplan orders a set of stops into a round trip that starts and ends at
home, trying every possible ordering.

The first point given is home. Points from --file come before points given
as arguments. Each argument is a "longitude,latitude" pair in degrees; put
"--" before the first argument that starts with a minus sign.

The default selection keeps the longest round trip; use --select shortest
for the shortest one.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `JSON file of points, e.g. [{"lng":-0.18,"lat":51.52}]`)
	cmd.Flags().StringVarP(&opts.selection, "select", "s", opts.selection, "route selection: longest or shortest")
	cmd.Flags().IntVarP(&opts.maxStops, "max-stops", "m", opts.maxStops, "maximum number of stops besides home (0 for no limit)")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	selection, err := domain.ParseSelection(opts.selection)
	if err != nil {
		return err
	}

	var points []domain.Point
	if opts.file != "" {
		var source ports.PointSource = pointsfile.NewJSONPointSource(opts.file)
		filePoints, err := source.LoadPoints(cmd.Context())
		if err != nil {
			return err
		}
		points = append(points, filePoints...)
	}

	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	optimizer, err := services.NewRouteOptimizer(distance.NewHaversineDistanceProvider(), selection)
	if err != nil {
		return err
	}

	for _, p := range points {
		lon, lat := p.Coordinates()
		if _, err := optimizer.AddLocationWithLimit(lon, lat, opts.maxStops); err != nil {
			return err
		}
	}

	best, ok := optimizer.BestRoute()
	if !ok {
		return ErrNoHome
	}

	return render(cmd.OutOrStdout(), best, selection)
}

// parsePoint reads a "lng,lat" pair.
func parsePoint(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("parse point %q: want lng,lat", s)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("parse point %q: longitude: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("parse point %q: latitude: %w", s, err)
	}

	return domain.NewPoint(lon, lat), nil
}

func render(w io.Writer, best *domain.ScoredRoute, selection domain.Selection) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Role", "Longitude", "Latitude", "Leg (km)"})
	table.SetAutoFormatHeaders(false)

	roles := best.Route.Roles()
	for i, p := range best.Route {
		leg := "-"
		if i > 0 {
			leg = formatKm(best.Route[i-1].DistanceTo(p))
		}
		table.Append([]string{
			strconv.Itoa(i),
			string(roles[i]),
			strconv.FormatFloat(p.Lon(), 'f', -1, 64),
			strconv.FormatFloat(p.Lat(), 'f', -1, 64),
			leg,
		})
	}
	table.Render()

	total := fmt.Sprintf("Total Distance: %skm (%s)", formatKm(best.TotalDistanceKm), selection)
	_, err := fmt.Fprintln(w, totalStyle.Render(total))
	return err
}

// formatKm rounds to two decimals for display.
func formatKm(km float64) string {
	return strconv.FormatFloat(math.Round(km*100)/100, 'f', -1, 64)
}
