package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/notify"
)

// notifyRenderer prints notifications from the queue to stderr so they never
// interleave with command output on stdout.
type notifyRenderer struct {
	out io.Writer
}

func (r *notifyRenderer) NotificationShown(n notify.Notification) {
	prefix := "•"
	switch n.Variant {
	case notify.VariantSuccess:
		prefix = "✓"
	case notify.VariantError:
		prefix = "✗"
	}
	fmt.Fprintf(r.out, "%s %s\n", prefix, n.Message)
}

func (r *notifyRenderer) NotificationDismissed(string) {}

// prompter reads interactive answers line by line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(q string) (string, bool) {
	fmt.Fprint(p.out, q)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *prompter) askInt(q string, min, max int) (int, bool) {
	for {
		ans, ok := p.ask(q)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(ans)
		if err == nil && n >= min && n <= max {
			return n, true
		}
		fmt.Fprintf(p.out, "enter a number between %d and %d\n", min, max)
	}
}

func renderWord(out io.Writer, w *entity.Word) {
	fmt.Fprintf(out, "\n%s", w.Text)
	if w.Phonetic != "" {
		fmt.Fprintf(out, "  /%s/", strings.Trim(w.Phonetic, "/"))
	}
	fmt.Fprintln(out)
	for i, m := range w.Meanings {
		fmt.Fprintf(out, "  %d. (%s) %s\n", i+1, m.PartOfSpeech, m.Definition)
		if m.Example != "" {
			fmt.Fprintf(out, "     e.g. %s\n", m.Example)
		}
	}
	if w.HasAnalysis() {
		renderAnalysis(out, w.Analysis)
	}
}

func renderAnalysis(out io.Writer, a *entity.WordAnalysis) {
	if a.Difficulty.Tier != entity.TierUnspecified {
		fmt.Fprintf(out, "  difficulty: %s (%d/100)\n", a.Difficulty.Tier, a.Difficulty.Score)
	}
	if len(a.Syllables) > 0 {
		parts := lo.Map(a.Syllables, func(s entity.Syllable, _ int) string {
			if s.Stressed {
				return strings.ToUpper(s.Text)
			}
			return s.Text
		})
		fmt.Fprintf(out, "  syllables: %s\n", strings.Join(parts, "·"))
	}
	if len(a.Synonyms) > 0 {
		fmt.Fprintf(out, "  synonyms: %s\n", strings.Join(a.Synonyms, ", "))
	}
	if len(a.Antonyms) > 0 {
		fmt.Fprintf(out, "  antonyms: %s\n", strings.Join(a.Antonyms, ", "))
	}
	if a.UsageContext != "" {
		fmt.Fprintf(out, "  usage: %s\n", a.UsageContext)
	}
}

func renderCard(out io.Writer, c *entity.LearningCard) {
	fmt.Fprintf(out, "\n┌─ %s\n", c.Word)
	fmt.Fprintf(out, "│  (%s) %s\n", c.Meaning.PartOfSpeech, c.Meaning.Definition)
	if c.Example != "" {
		fmt.Fprintf(out, "│  %q\n", c.Example)
	}
	if c.ImageURL != "" {
		fmt.Fprintf(out, "│  image: %s\n", c.ImageURL)
	}
	fmt.Fprintln(out, "└─")
}

func renderCollections(out io.Writer, collections []entity.Collection) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCARDS\tDUE\tTAGS\tUPDATED")
	now := time.Now()
	for i := range collections {
		c := &collections[i]
		name := c.Name
		if c.Default {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			c.ID, name, c.CardCount(), c.DueCount(now),
			strings.Join(c.Tags, ","), c.UpdatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func renderCollectionCard(out io.Writer, c *entity.CollectionCard) {
	fmt.Fprintf(out, "%s  [%s/%s]  reviews=%d  streak=%d", c.Word, c.SRS.Status, c.SRS.Stage, c.SRS.ReviewCount, c.SRS.CorrectStreak)
	if c.SRS.NextReviewAt != nil {
		fmt.Fprintf(out, "  next=%s", c.SRS.NextReviewAt.Format("2006-01-02"))
	}
	fmt.Fprintln(out)
}
