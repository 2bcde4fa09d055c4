package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vetpost/backend/internal/app"
	"vetpost/backend/internal/calendar"
	"vetpost/backend/internal/model"
	"vetpost/backend/internal/service"
	"vetpost/backend/internal/service/ai"
)

const dateLayout = "2006-01-02"

type topicOutput struct {
	Day   string `json:"day"`
	Topic string `json:"topic"`
}

type generateOutput struct {
	model.GeneratedPost
	Images *model.ImageSearchResult `json:"images,omitempty"`
}

// resolveDate parses value in loc, defaulting to today.
func (env *cliEnv) resolveDate(value string) (time.Time, error) {
	loc := env.cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	if strings.TrimSpace(value) == "" {
		return env.now().In(loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func newTopicCmd(env *cliEnv) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Print the calendar topic for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := env.resolveDate(date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), topicOutput{Day: calendar.Key(day), Topic: calendar.LookupTopic(day)})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default: today)")
	return cmd
}

func newTonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List the supported tones and their image styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tone := range ai.Tones() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tone, ai.StyleFor(tone))
			}
			return nil
		},
	}
}

func newGenerateCmd(env *cliEnv) *cobra.Command {
	var (
		date       string
		tone       string
		withImages bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a post idea for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := env.resolveDate(date)
			if err != nil {
				return err
			}
			svcs, err := app.Build(cmd.Context(), env.cfg, nil)
			if err != nil {
				return err
			}

			post, err := svcs.Posts.Generate(cmd.Context(), service.GenerateParams{Date: day, Tone: tone})
			if err != nil {
				return err
			}
			out := generateOutput{GeneratedPost: post}
			if withImages {
				images, err := svcs.Images.Search(cmd.Context(), service.SearchTermForTopic(post.Topic))
				if err != nil {
					return err
				}
				out.Images = &images
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&tone, "tone", ai.ToneInformative, "post tone, see 'vetpost tones'")
	cmd.Flags().BoolVar(&withImages, "images", false, "also search photos for the topic")
	return cmd
}

func newImagesCmd(env *cliEnv) *cobra.Command {
	var term string
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Search pet photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := app.Build(cmd.Context(), env.cfg, nil)
			if err != nil {
				return err
			}
			result, err := svcs.Images.Search(cmd.Context(), term)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&term, "term", "", "search term")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}
