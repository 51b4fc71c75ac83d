/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vibe-english-platform/vocabcli/internal/app"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/usecase"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run a spaced-repetition review session over due cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireLearningCenter(container.Navigator); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p := newPrompter(cmd.InOrStdin(), out)

		session := container.NewReviewSession()
		session.OnComplete(func() {
			fmt.Fprintln(out, "\nSession complete — nothing more due right now.")
		})

		if err := session.Start(cmd.Context()); err != nil {
			return err
		}
		if session.Completed() {
			return nil
		}
		fmt.Fprintf(out, "%d cards due\n", session.Total())

		for !session.Completed() {
			cur, _ := session.Current()
			fmt.Fprintf(out, "\n[%d/%d] %s\n", session.Total()-session.Remaining()+1, session.Total(), cur.Card.Word)

			q, err := session.Question(cmd.Context())
			if err != nil {
				return err
			}
			renderQuestion(out, q)

			if ans, ok := p.ask("your answer (empty to reveal): "); !ok {
				return nil
			} else if ans == "" {
				fmt.Fprintln(out, "revealing...")
			}
			answer, err := session.Reveal()
			if err != nil {
				return err
			}
			if answer != "" {
				fmt.Fprintf(out, "answer: %s\n", answer)
			}

			n, ok := p.askInt("rate recall — 1 Again, 2 Hard, 3 Good, 4 Easy: ", 1, 4)
			if !ok {
				return nil
			}
			outcome, err := session.Submit(cmd.Context(), entity.Rating(n), 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "→ %s, next review interval %d days\n", outcome.SRS.Status, outcome.SRS.IntervalDays)
		}
		return nil
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireLearningCenter(container.Navigator); err != nil {
			return err
		}

		stats, err := container.Client.ReviewStats(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "due now: %d\n", stats.DueNow)
		fmt.Fprintf(out, "reviewed today: %d\n", stats.ReviewedToday)
		fmt.Fprintf(out, "total reviews: %d\n", stats.TotalReviews)
		fmt.Fprintf(out, "accuracy: %.0f%%\n", stats.Accuracy*100)
		fmt.Fprintf(out, "streak: %d days\n", stats.StreakDays)
		return nil
	},
}

func requireLearningCenter(nav *usecase.Navigator) error {
	if err := nav.Navigate(usecase.PathLearningCenter); err != nil {
		if errors.Is(err, entity.ErrAuthRequired) {
			return fmt.Errorf("log in first with `vocabcli login`: %w", entity.ErrAuthRequired)
		}
		return err
	}
	return nil
}

func renderQuestion(out io.Writer, q *entity.ReviewQuestion) {
	fmt.Fprintln(out, q.Prompt)
	switch q.Type {
	case entity.QuestionMultipleChoice:
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'a'+i, opt)
		}
	case entity.QuestionTrueFalse:
		fmt.Fprintln(out, "  true / false")
	case entity.QuestionFillBlank:
		if q.Hint != "" {
			fmt.Fprintf(out, "  hint: %s\n", q.Hint)
		}
	case entity.QuestionFreeWriting, entity.QuestionSpeaking:
		fmt.Fprintf(out, "  (%s — graded on submission)\n", strings.ReplaceAll(string(q.Type), "_", " "))
	}
}

func init() {
	rootCmd.AddCommand(reviewCmd, statsCmd)
}
