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

	"github.com/spf13/cobra"

	"github.com/vibe-english-platform/vocabcli/internal/app"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// learnCmd represents the learn command
var learnCmd = &cobra.Command{
	Use:   "learn [word]",
	Short: "Search a word, pick a meaning, and generate a learning card",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		container.Notifier.SetListener(&notifyRenderer{out: cmd.ErrOrStderr()})
		p := newPrompter(cmd.InOrStdin(), out)

		term := ""
		if len(args) == 1 {
			term = args[0]
		} else {
			term, _ = p.ask("word to learn: ")
		}
		if term == "" {
			return fmt.Errorf("no word given")
		}

		flow := container.Learn
		if flow.GuestCapReached() {
			fmt.Fprintln(out, "You've used your free lookups for now — log in with `vocabcli login` to keep going.")
		}

		word, err := flow.Search(cmd.Context(), term)
		if errors.Is(err, entity.ErrWordNotFound) {
			fmt.Fprintf(out, "No meanings found for %q.\n", term)
			return nil
		}
		if err != nil {
			return err
		}
		renderWord(out, word)

		// A single sense is already resolved; otherwise ask.
		idx := 0
		if !flow.MeaningResolved() {
			n, ok := p.askInt(fmt.Sprintf("pick a meaning (1-%d): ", len(word.Meanings)), 1, len(word.Meanings))
			if !ok {
				return nil
			}
			idx = n - 1
		}

		fmt.Fprintln(out, "generating card...")
		card, err := flow.SelectMeaning(cmd.Context(), idx)
		if err != nil {
			return err
		}
		renderCard(out, card)

		if !container.Client.Authenticated() {
			fmt.Fprintln(out, "Log in to save cards into collections.")
			return nil
		}

		ans, _ := p.ask("save to a collection? [y/N] ")
		if ans != "y" && ans != "Y" {
			return nil
		}
		collections, err := container.Collections.List(cmd.Context(), "")
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			fmt.Fprintln(out, "No collections yet — create one with `vocabcli collections create`.")
			return nil
		}
		renderCollections(out, collections)
		choice, ok := p.askInt(fmt.Sprintf("collection (1-%d): ", len(collections)), 1, len(collections))
		if !ok {
			return nil
		}
		saved, err := flow.Save(cmd.Context(), collections[choice-1].ID)
		if err != nil {
			return err
		}
		renderCollectionCard(out, saved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)
}
