package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"speller/internal/customdict"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage custom dictionary words",
	Long: `Manage the custom word set stored in Redis. Custom words are treated
as dictionary members by the check service. Connection settings come
from REDIS_ADDR, REDIS_PASSWORD and REDIS_DB.`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Add a custom word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := strings.ToLower(strings.TrimSpace(args[0]))
		if word == "" {
			return fmt.Errorf("word must not be empty")
		}
		store := newStore()
		if err := store.Add(cmd.Context(), word); err != nil {
			return fmt.Errorf("failed to add word: %w", err)
		}
		cmd.Printf("added %q\n", word)
		return nil
	},
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "remove <word>",
	Short: "Remove a custom word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := strings.ToLower(strings.TrimSpace(args[0]))
		store := newStore()
		if err := store.Remove(cmd.Context(), word); err != nil {
			return fmt.Errorf("failed to remove word: %w", err)
		}
		cmd.Printf("removed %q\n", word)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		words, err := store.All(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list words: %w", err)
		}
		sort.Strings(words)
		for _, w := range words {
			cmd.Println(w)
		}
		return nil
	},
}

func init() {
	wordsCmd.AddCommand(wordsAddCmd, wordsRemoveCmd, wordsListCmd)
	rootCmd.AddCommand(wordsCmd)
}

func newStore() *customdict.Store {
	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	return customdict.New(client, os.Getenv("REDIS_KEY"))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
