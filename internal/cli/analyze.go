package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/andrewheiss/tidytext-pos-john/annotate"
	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/andrewheiss/tidytext-pos-john/lasso"
	"github.com/andrewheiss/tidytext-pos-john/sparse"
	"github.com/andrewheiss/tidytext-pos-john/split"
	"github.com/andrewheiss/tidytext-pos-john/tfidf"
)

// analyzeCmd runs the full pipeline over a corpus directory.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <corpus-dir>",
	Short: "Rank group-distinctive words by tf-idf and LASSO coefficient",
	Long: `Reads a corpus directory (one subdirectory per group, one .txt file
per document), annotates every document with the built-in
tokenizer/stemmer/tagger, then prints:

  1. the top lemmas of the target group by tf-idf, filtered to one
     part of speech, and
  2. the lemmas with the strongest LASSO coefficients for predicting
     the target group, at the cross-validated lambda_1se penalty.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.String("group", "", "target group (default: first group alphabetically)")
	f.String("pos", "NOUN", "part-of-speech tag for the tf-idf table")
	f.Int("top", 10, "rows per table")
	f.Float64("proportion", 0.75, "training split proportion")
	f.Int64("seed", 1234, "seed for the split and fold assignment")
	f.Int("folds", 10, "cross-validation folds")
	f.Int("workers", 0, "parallel fold fitters (0 = GOMAXPROCS)")
	f.String("format", "table", "output format: table or yaml")

	for _, name := range []string{"group", "pos", "top", "proportion", "seed", "folds", "workers", "format"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}
}

// report is the yaml-serializable output of one analyze run.
type report struct {
	Group string `yaml:"group"`
	POS   string `yaml:"pos"`
	TfIdf []struct {
		Rank  int     `yaml:"rank"`
		Lemma string  `yaml:"lemma"`
		TfIdf float64 `yaml:"tf_idf"`
	} `yaml:"tf_idf"`
	Lambda1SE    float64 `yaml:"lambda_1se"`
	Coefficients []struct {
		Term     string  `yaml:"term"`
		Estimate float64 `yaml:"estimate"`
		Sign     string  `yaml:"sign"`
	} `yaml:"coefficients"`
}

func runAnalyze(dir string) error {
	tokens, docs, err := readCorpus(dir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found under %s", dir)
	}
	groups := corpus.Groups(docs)

	target := viper.GetString("group")
	if target == "" {
		target = docs[0].Group
		for _, d := range docs {
			if d.Group < target {
				target = d.Group
			}
		}
	}
	pos := viper.GetString("pos")
	topN := viper.GetInt("top")

	// tf-idf table.
	counts, err := corpus.Count(tokens, groups)
	if err != nil {
		return err
	}
	ranked := tfidf.FilterRank(tfidf.Score(counts), pos, target)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	// LASSO coefficients at lambda_1se.
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.DocumentID
	}
	train, _, err := split.Split(ids, viper.GetFloat64("proportion"), viper.GetInt64("seed"))
	if err != nil {
		return err
	}
	m, err := sparse.Build(tokens, train)
	if err != nil {
		return err
	}
	y, err := sparse.Labels(m, groups, target)
	if err != nil {
		return err
	}
	opts := lasso.DefaultOptions()
	opts.Folds = viper.GetInt("folds")
	opts.Seed = viper.GetInt64("seed")
	opts.Workers = viper.GetInt("workers")
	cv, err := lasso.CrossValidate(m, y, &opts)
	if err != nil {
		return err
	}
	top := lasso.TopTerms(cv.Path.At(cv.Lambda1SE), topN)

	rep := buildReport(target, pos, ranked, cv.Lambda1SE, top)
	if viper.GetString("format") == "yaml" {
		out, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		fmt.Print(string(out))

		return nil
	}
	printReport(rep)

	return nil
}

// readCorpus walks dir: each subdirectory is a group, each .txt file in
// it one document (id "group/filename").
func readCorpus(dir string) ([]corpus.Token, []corpus.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	ann := annotate.New()
	var tokens []corpus.Token
	var docs []corpus.Document
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		group := e.Name()
		files, err := os.ReadDir(filepath.Join(dir, group))
		if err != nil {
			return nil, nil, err
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".txt") {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(dir, group, f.Name()))
			if err != nil {
				return nil, nil, err
			}
			id := group + "/" + strings.TrimSuffix(f.Name(), ".txt")
			docTokens, err := ann.Annotate(id, string(raw))
			if err != nil {
				return nil, nil, err
			}
			tokens = append(tokens, docTokens...)
			docs = append(docs, corpus.Document{DocumentID: id, Group: group})
		}
	}

	return tokens, docs, nil
}

func buildReport(target, pos string, ranked []tfidf.RankedRecord, lambda1SE float64, top []lasso.RankedCoefficient) report {
	rep := report{Group: target, POS: pos, Lambda1SE: lambda1SE}
	for _, r := range ranked {
		rep.TfIdf = append(rep.TfIdf, struct {
			Rank  int     `yaml:"rank"`
			Lemma string  `yaml:"lemma"`
			TfIdf float64 `yaml:"tf_idf"`
		}{r.Rank, r.Lemma, r.TfIdf})
	}
	for _, rc := range top {
		rep.Coefficients = append(rep.Coefficients, struct {
			Term     string  `yaml:"term"`
			Estimate float64 `yaml:"estimate"`
			Sign     string  `yaml:"sign"`
		}{rc.Term, rc.Estimate, rc.Sign.String()})
	}

	return rep
}

func printReport(rep report) {
	fmt.Printf("Top %s lemmas of %q by tf-idf:\n", rep.POS, rep.Group)
	for _, r := range rep.TfIdf {
		fmt.Printf("  %2d. %-20s %.5f\n", r.Rank, r.Lemma, r.TfIdf)
	}
	fmt.Printf("\nLASSO coefficients at lambda_1se = %.5f (target %q):\n", rep.Lambda1SE, rep.Group)
	for _, c := range rep.Coefficients {
		fmt.Printf("  %-20s %+.4f  (%s)\n", c.Term, c.Estimate, c.Sign)
	}
}
