package main

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/fetch"
	"github.com/getskill/skillshare/pkg/installer"
	"github.com/getskill/skillshare/pkg/presenter"
	"github.com/getskill/skillshare/pkg/skill"
)

type AddConfig struct {
	Global bool
	Dir    string
	URL    bool
}

func NewAddConfig() *AddConfig {
	return &AddConfig{}
}

var addCmd = &cobra.Command{
	Use:   "add <source>",
	Short: "Add skills from a repository or a raw URL",
	Long: `Add skills from outside the local collection. The source is either a
GitHub repository containing skill directories, or with --url the base
URL of a single skill directory on a raw file host.

Examples:
  skillshare add getskill/skills
  skillshare add getskill/skills@v0.1.0
  skillshare add getskill/skills --dir skills/commit-messages
  skillshare add https://raw.githubusercontent.com/getskill/skills/main/skills/commit-messages --url
  skillshare add getskill/skills -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getAddConfigFromFlags(cmd)
		addSkills(cmd, args[0], config)
	},
}

func init() {
	defaults := NewAddConfig()
	addCmd.Flags().BoolP("global", "g", defaults.Global, "Install to the user-global skills directory instead of the project-local one")
	addCmd.Flags().StringP("dir", "d", defaults.Dir, "Path to a specific skill directory within the repository")
	addCmd.Flags().Bool("url", defaults.URL, "Treat the source as the base URL of a skill directory")
	rootCmd.AddCommand(addCmd)
}

func getAddConfigFromFlags(cmd *cobra.Command) *AddConfig {
	config := NewAddConfig()
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if dir, err := cmd.Flags().GetString("dir"); err == nil {
		config.Dir = dir
	}
	if fromURL, err := cmd.Flags().GetBool("url"); err == nil {
		config.URL = fromURL
	}
	return config
}

func addSkills(cmd *cobra.Command, source string, config *AddConfig) {
	destRoot, err := installer.Dir(installer.DefaultTarget, config.Global)
	if err != nil {
		presenter.Error(err, "Failed to determine skills directory")
		os.Exit(1)
	}

	if config.URL {
		addFromURL(cmd, source, destRoot)
		return
	}
	addFromRepo(cmd, source, destRoot, config)
}

func addFromURL(cmd *cobra.Command, baseURL, destRoot string) {
	id, err := idFromBaseURL(baseURL)
	if err != nil {
		presenter.Error(err, "Invalid skill URL")
		os.Exit(1)
	}

	destDir := filepath.Join(destRoot, id)
	if _, err := os.Stat(destDir); err == nil {
		presenter.Error(errors.Errorf("skill already installed at %s", destDir), "Skill already exists")
		os.Exit(1)
	}

	fetcher := fetch.NewHTTPFetcher()
	if err := fetcher.FetchSkill(cmd.Context(), baseURL, destDir); err != nil {
		os.RemoveAll(destDir)
		presenter.Error(err, "Failed to fetch skill")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Installed skill '%s' to %s", id, destDir))
}

func addFromRepo(cmd *cobra.Command, source, destRoot string, config *AddConfig) {
	if !fetch.IsGhInstalled() {
		presenter.Error(errors.New("gh CLI is not installed"), "Please install the GitHub CLI (gh) to use this command")
		os.Exit(1)
	}
	if !fetch.IsGhAuthenticated() {
		presenter.Error(errors.New("gh CLI is not authenticated"), "Please run 'gh auth login' to authenticate")
		os.Exit(1)
	}

	tmpDir, cleanup, err := fetch.CloneRepo(cmd.Context(), source)
	if err != nil {
		presenter.Error(err, "Failed to clone repository")
		os.Exit(1)
	}
	defer cleanup()

	var skillDirs []string
	if config.Dir != "" {
		targetPath := filepath.Join(tmpDir, config.Dir)
		if _, err := os.Stat(filepath.Join(targetPath, skill.DocumentFileName)); os.IsNotExist(err) {
			presenter.Error(errors.Errorf("no %s found at %s", skill.DocumentFileName, config.Dir), "Invalid skill path")
			os.Exit(1)
		}
		skillDirs = []string{targetPath}
	} else {
		skillDirs, err = fetch.FindSkillDirs(tmpDir)
		if err != nil {
			presenter.Error(err, "Failed to find skills in repository")
			os.Exit(1)
		}
	}

	if len(skillDirs) == 0 {
		presenter.Warning("No skills found in the repository")
		return
	}

	installed := 0
	for _, dir := range skillDirs {
		destDir, err := installer.Install(dir, destRoot, false)
		if err != nil {
			presenter.Warning(fmt.Sprintf("Skipping '%s': %v", filepath.Base(dir), err))
			continue
		}
		installed++
		presenter.Success(fmt.Sprintf("Installed skill '%s' to %s", filepath.Base(dir), destDir))
	}

	if installed > 0 {
		presenter.Info(fmt.Sprintf("Successfully installed %d skill(s)", installed))
	}
}

// idFromBaseURL derives the skill id from the last path segment of a
// skill directory URL
func idFromBaseURL(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.Errorf("unsupported scheme '%s'", parsed.Scheme)
	}

	id := path.Base(strings.TrimRight(parsed.Path, "/"))
	if id == "" || id == "." || id == "/" {
		return "", errors.Errorf("cannot derive a skill id from %s", baseURL)
	}

	return id, nil
}
