package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/CortexBlog/blog-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "revalidate-token",
	Short: "Print a bearer token for POST /api/v1/content/revalidate",
	Long: `Signs a token with REVALIDATE_SECRET for the CMS webhook that purges the
content cache. A zero --ttl issues a token without expiry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := revalidateToken(cfg.RevalidateSecret, tokenSubject, tokenTTL, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "sanity-webhook", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime, e.g. 720h")
}

func revalidateToken(secret, subject string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("REVALIDATE_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}
	return utils.SignJWT(claims, []byte(secret))
}
