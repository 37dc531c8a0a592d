package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digcul/surveyscope/internal/chartdata"
	"github.com/digcul/surveyscope/internal/derive"
	"github.com/digcul/surveyscope/internal/schema"
	"github.com/digcul/surveyscope/internal/stats"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Correlation matrix over time spent and all ordinal variables",
	Long: `Computes pairwise-complete Pearson correlations: each variable pair is
correlated over the respondents answering both questions, so different cells
may cover different subsets. Undefined cells (fewer than 2 shared answers or
zero variance) print as a dash.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		m := chartdata.CorrelationMatrix(ds.Records, ds.Schema.CorrelationVariables())

		for i, label := range m.Labels {
			fmt.Printf("%2d  %s\n", i+1, label)
		}
		fmt.Println()
		fmt.Print("      ")
		for i := range m.Labels {
			fmt.Printf("%6d", i+1)
		}
		fmt.Println()
		for i := range m.Labels {
			fmt.Printf("%4d  ", i+1)
			for j := range m.Labels {
				if !m.Defined[i][j] {
					fmt.Printf("%6s", "-")
					continue
				}
				fmt.Printf("%6.2f", m.Values[i][j])
			}
			fmt.Println()
		}
		return nil
	},
}

var (
	regressX string
	regressY string
	regressZ string
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Linear regression between survey variables",
	Long: `Fits y ~ x by ordinary least squares, or z ~ x + y when --z is given.
Variables are matched by case-insensitive substring against the labels shown
by 'surveyscope correlate'. Respondents missing any involved value are
excluded from the fit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if regressX == "" || regressY == "" {
			return fmt.Errorf("--x and --y are required")
		}
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		vars := ds.Schema.CorrelationVariables()
		dx, err := matchVariable(vars, regressX)
		if err != nil {
			return err
		}
		dy, err := matchVariable(vars, regressY)
		if err != nil {
			return err
		}

		xs := derive.Series(ds.Records, dx)
		ys := derive.Series(ds.Records, dy)

		if regressZ == "" {
			ax, ay := derive.AlignPairs(xs, ys)
			fit, ok := stats.Linear(ax, ay)
			if !ok {
				return fmt.Errorf("regression undefined: need at least 2 complete pairs with varying %s", dx.Label)
			}
			fmt.Printf("%s ~ %s\n", dy.Label, dx.Label)
			fmt.Printf("  slope:     %.4f\n", fit.Slope)
			fmt.Printf("  intercept: %.4f\n", fit.Intercept)
			fmt.Printf("  R²:        %.4f\n", fit.R2)
			fmt.Printf("  n:         %d\n", fit.N)
			tl := chartdata.LineTrend(fit, minOf(ax), maxOf(ax))
			fmt.Printf("  trendline: (%.2f, %.2f) -> (%.2f, %.2f)\n", tl.X[0], tl.Y[0], tl.X[1], tl.Y[1])
			return nil
		}

		dz, err := matchVariable(vars, regressZ)
		if err != nil {
			return err
		}
		zs := derive.Series(ds.Records, dz)
		ax, ay, az := derive.AlignTriples(xs, ys, zs)
		fit, ok := stats.Plane(ax, ay, az)
		if !ok {
			return fmt.Errorf("regression undefined: need at least 3 complete triples with non-collinear predictors")
		}
		fmt.Printf("%s ~ %s + %s\n", dz.Label, dx.Label, dy.Label)
		fmt.Printf("  coeff %s: %.4f\n", dx.Label, fit.CoeffX)
		fmt.Printf("  coeff %s: %.4f\n", dy.Label, fit.CoeffY)
		fmt.Printf("  intercept: %.4f\n", fit.Intercept)
		fmt.Printf("  R²:        %.4f\n", fit.R2)
		fmt.Printf("  n:         %d\n", fit.N)
		return nil
	},
}

// matchVariable resolves a user-supplied name against the variable labels by
// case-insensitive substring. Exactly one variable must match.
func matchVariable(vars []schema.Descriptor, name string) (schema.Descriptor, error) {
	needle := strings.ToLower(name)
	var found []schema.Descriptor
	for _, d := range vars {
		if strings.Contains(strings.ToLower(d.Label), needle) {
			found = append(found, d)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return schema.Descriptor{}, fmt.Errorf("no variable matches %q (see 'surveyscope correlate' for labels)", name)
	default:
		labels := make([]string, len(found))
		for i, d := range found {
			labels[i] = d.Label
		}
		return schema.Descriptor{}, fmt.Errorf("%q is ambiguous: matches %s", name, strings.Join(labels, "; "))
	}
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func init() {
	regressCmd.Flags().StringVar(&regressX, "x", "", "predictor variable")
	regressCmd.Flags().StringVar(&regressY, "y", "", "response variable (second predictor when --z is set)")
	regressCmd.Flags().StringVar(&regressZ, "z", "", "response variable for two-predictor regression")
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(regressCmd)
}
