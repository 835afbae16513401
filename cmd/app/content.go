package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/spf13/cobra"
)

var (
	postsStart    int
	postsEnd      int
	postsCategory string
	relatedIDs    string
	relatedLimit  int
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Run a catalog query against the content store and print the JSON result",
}

func init() {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "List a window of published posts",
		Args:  cobra.NoArgs,
		RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
			return c.Posts(cmd.Context(), postsStart, postsEnd, postsCategory)
		}),
	}
	postsCmd.Flags().IntVar(&postsStart, "start", 0, "first index (inclusive)")
	postsCmd.Flags().IntVar(&postsEnd, "end", content.DefaultPageEnd, "last index (exclusive)")
	postsCmd.Flags().StringVar(&postsCategory, "category", "", "category slug")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count published posts",
		Args:  cobra.NoArgs,
		RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
			return c.PostCount(cmd.Context(), postsCategory)
		}),
	}
	countCmd.Flags().StringVar(&postsCategory, "category", "", "category slug")

	relatedCmd := &cobra.Command{
		Use:   "related <postId>",
		Short: "List posts sharing a category with a post",
		Args:  cobra.ExactArgs(1),
		RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
			var ids []string
			if relatedIDs != "" {
				ids = strings.Split(relatedIDs, ",")
			}
			return c.RelatedPosts(cmd.Context(), args[0], ids, relatedLimit)
		}),
	}
	relatedCmd.Flags().StringVar(&relatedIDs, "categories", "", "comma separated category ids")
	relatedCmd.Flags().IntVar(&relatedLimit, "limit", content.DefaultRelatedLimit, "maximum number of posts")

	contentCmd.AddCommand(
		&cobra.Command{
			Use:   "latest",
			Short: "List the latest published posts",
			Args:  cobra.NoArgs,
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.LatestPosts(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "post <slug>",
			Short: "Fetch one post with its body",
			Args:  cobra.ExactArgs(1),
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.Post(cmd.Context(), args[0])
			}),
		},
		postsCmd,
		countCmd,
		&cobra.Command{
			Use:   "categories",
			Short: "List categories with post counts",
			Args:  cobra.NoArgs,
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.Categories(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "author <slug>",
			Short: "Fetch one author",
			Args:  cobra.ExactArgs(1),
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.Author(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "author-posts <slug>",
			Short: "List posts by an author",
			Args:  cobra.ExactArgs(1),
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.PostsByAuthor(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "search <term>",
			Short: "Search post titles and excerpts",
			Args:  cobra.ExactArgs(1),
			RunE: runCatalog(func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error) {
				return c.SearchPosts(cmd.Context(), args[0])
			}),
		},
		relatedCmd,
	)
}

type catalogFunc func(cmd *cobra.Command, c *content.Catalog, args []string) (any, error)

func runCatalog(fn catalogFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		catalog := content.NewCatalog(newContentStore(cfg, newHTTPClient(cfg)))
		result, err := fn(cmd, catalog, args)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}
