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

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/app"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/usecase"
)

// collectionsCmd represents the collections command group
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Browse and manage card collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		filter, _ := cmd.Flags().GetString("filter")
		collections, err := container.Collections.List(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no collections")
			return nil
		}
		renderCollections(cmd.OutOrStdout(), collections)
		return nil
	},
}

var collectionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a collection's cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		collections, err := container.Collections.List(cmd.Context(), "")
		if err != nil {
			return err
		}
		for i := range collections {
			if collections[i].ID == args[0] {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s — %s\n", collections[i].Name, collections[i].Description)
				for j := range collections[i].Cards {
					renderCollectionCard(out, &collections[i].Cards[j])
				}
				return nil
			}
		}
		return entity.ErrCollectionNotFound
	},
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		draft, err := draftFromFlags(cmd, args[0])
		if err != nil {
			return err
		}
		created, err := container.Collections.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %q (%s)\n", created.Name, created.ID)
		return nil
	},
}

var collectionsEditCmd = &cobra.Command{
	Use:   "edit <id> <name>",
	Short: "Edit a collection's fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		draft, err := draftFromFlags(cmd, args[1])
		if err != nil {
			return err
		}
		updated, err := container.Collections.Update(cmd.Context(), args[0], draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %q\n", updated.Name)
		return nil
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a collection and its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		if err := container.Collections.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted")
		return nil
	},
}

var collectionsCloneCmd = &cobra.Command{
	Use:   "clone <id>",
	Short: "Clone a collection, cards included",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		clone, err := container.Collections.Clone(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cloned into %q (%s)\n", clone.Name, clone.ID)
		return nil
	},
}

var cardsRemoveCmd = &cobra.Command{
	Use:   "remove-card <collection-id> <card-id>",
	Short: "Remove a card from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()
		if err := requireAuth(container.Navigator); err != nil {
			return err
		}

		if err := container.Collections.RemoveCard(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "removed")
		return nil
	},
}

// requireAuth mirrors the root controller's gating: opening the collection
// or learning-center views without a token prompts for login instead of
// switching.
func requireAuth(nav *usecase.Navigator) error {
	if err := nav.Navigate(usecase.PathCollections); err != nil {
		if errors.Is(err, entity.ErrAuthRequired) {
			return fmt.Errorf("log in first with `vocabcli login`: %w", entity.ErrAuthRequired)
		}
		return err
	}
	return nil
}

func draftFromFlags(cmd *cobra.Command, name string) (api.CollectionDraft, error) {
	description, _ := cmd.Flags().GetString("description")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	color, _ := cmd.Flags().GetString("color")
	isDefault, _ := cmd.Flags().GetBool("default")
	return api.CollectionDraft{
		Name:        name,
		Description: description,
		Tags:        tags,
		Color:       color,
		Default:     isDefault,
	}, nil
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(collectionsListCmd, collectionsShowCmd, collectionsCreateCmd,
		collectionsEditCmd, collectionsDeleteCmd, collectionsCloneCmd, cardsRemoveCmd)

	collectionsListCmd.Flags().String("filter", "", `CEL filter, e.g. 'cardCount >= 10 && "travel" in tags'`)
	for _, c := range []*cobra.Command{collectionsCreateCmd, collectionsEditCmd} {
		c.Flags().String("description", "", "collection description")
		c.Flags().StringSlice("tags", nil, "tags")
		c.Flags().String("color", "", "display color")
		c.Flags().Bool("default", false, "mark as the default collection")
	}
}
