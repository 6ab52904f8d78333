package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchem-poker/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `List the saved games in the database. Local games are saved under
the mode ID, SSH players under "<mode>:<user>".

Examples:
  matchem saves
  matchem saves delete matchem:alice`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSaves(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	saves, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(saves) == 0 {
		fmt.Println("No saved games.")
		return nil
	}

	t := newTable("Slot", "Bytes", "Updated")
	for _, sv := range saves {
		t.Row(sv.Slot, fmt.Sprint(sv.Size), sv.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.Render())
	return nil
}

func runSavesDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteSession(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
