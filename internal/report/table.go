package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/speechmetrics/commscore/internal/scoring"
)

// WriteTable renders a scoring result as an aligned console table: a summary
// block, one row per criterion and a feedback section for anything worth
// acting on.
func WriteTable(res *scoring.Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Transcript Score ===\n\n")
	fmt.Fprintf(tw, "Overall Score:\t%d/100\n", res.OverallScore)
	fmt.Fprintf(tw, "Total Words:\t%d\n\n", res.TotalWords)

	writeCriteriaTable(tw, res)
	writeFeedback(tw, res)

	tw.Flush()
}

func writeCriteriaTable(tw *tabwriter.Writer, res *scoring.Result) {
	header := []string{"Criterion", "Score", "Weight", "Semantic", "Keywords", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, cr := range res.Criteria {
		status := "ok"
		if cr.Degraded {
			status = "degraded"
		}
		row := []string{
			cr.Name,
			fmt.Sprintf("%d", cr.Score),
			fmt.Sprintf("%.2f", cr.Weight),
			fmt.Sprintf("%d", cr.SemanticSimilarity),
			fmt.Sprintf("%d/%d", len(cr.KeywordsFound), len(cr.KeywordsFound)+len(cr.KeywordsMissing)),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeFeedback(tw *tabwriter.Writer, res *scoring.Result) {
	fmt.Fprintf(tw, "Feedback\n\n")

	for _, cr := range res.Criteria {
		fmt.Fprintf(tw, "%s\n", cr.Name)
		fmt.Fprintf(tw, "  Length: %s\n", cr.LengthFeedback)
		if len(cr.KeywordsMissing) > 0 {
			fmt.Fprintf(tw, "  Missing keywords: %s\n", strings.Join(cr.KeywordsMissing, ", "))
		}
		if cr.Degraded {
			fmt.Fprintf(tw, "  Semantic similarity was unavailable; a neutral value stood in.\n")
		}
	}

	fmt.Fprintln(tw)
}
