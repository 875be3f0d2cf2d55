package cli

import (
	"github.com/interutils/cli/internal/actions"
	configactions "github.com/interutils/cli/internal/actions/config"
	"github.com/interutils/cli/internal/actions/files"
	"github.com/interutils/cli/internal/actions/logs"
	"github.com/interutils/cli/internal/actions/network"
	"github.com/interutils/cli/internal/actions/theme"
	"github.com/interutils/cli/internal/app"
	"github.com/interutils/cli/internal/browser"
	"github.com/interutils/cli/internal/dispatchers"
	"github.com/interutils/cli/internal/paths"
	"github.com/interutils/cli/internal/prompt"
)

// RootName labels the top-level menu.
const RootName = "iu"

// BuildTree assembles the interactive menu around a wired application.
func BuildTree(a *app.App) *dispatchers.Node {
	prompter := prompt.New(a.Input, a.Output)
	root := dispatchers.NewRoot(RootName)

	fileDeps := files.DefaultDeps(a.Config, a.Output, browser.New(prompter, a.Output).Browse)
	fs := dispatchers.NewBranch("files", root, "")
	dispatchers.NewLeaf("browse", fs, "Pick a file: browse [dir]", files.Browse(fileDeps))
	dispatchers.NewLeaf("volume", fs, "Size and line count: volume <file>", files.Volume(fileDeps))
	dispatchers.NewLeaf("lines", fs, "Count lines: lines <file>", files.Lines(fileDeps))
	dispatchers.NewLeaf("image", fs, "Detect JPG/PNG/GIF: image <file>", files.Image(fileDeps))

	netDeps := network.DefaultDeps(a.Config, a.Output, a.Interrupts)
	nw := dispatchers.NewBranch("net", root, "network")
	dispatchers.NewLeaf("routes", nw, "Default gateway and subnets", network.Routes(netDeps))
	dispatchers.NewLeaf("ping", nw, "Check a host: ping <host> [count]", network.Ping(netDeps))
	dispatchers.NewLeaf("mac", nw, "Validate a MAC address: mac <address>", network.MAC(netDeps))

	cfgDeps := configactions.Deps{Config: a.Config, Out: a.Output}
	cfg := dispatchers.NewBranch("config", root, "")
	dispatchers.NewLeaf("get", cfg, "Print a setting: get <key>", configactions.Get(cfgDeps))
	dispatchers.NewLeaf("set", cfg, "Change a setting: set <key> <value>", configactions.Set(cfgDeps))
	dispatchers.NewLeaf("unset", cfg, "Remove a setting: unset <key>", configactions.Unset(cfgDeps))
	dispatchers.NewLeaf("list", cfg, "Show all settings", configactions.List(cfgDeps))

	themeDeps := theme.DefaultDeps(a.Config, a.Output, prompter)
	th := dispatchers.NewBranch("theme", root, "")
	dispatchers.NewLeaf("list", th, "Show available themes", theme.List(themeDeps))
	dispatchers.NewLeaf("set", th, "Switch theme: set <theme>", theme.Set(themeDeps))
	dispatchers.NewLeaf("pick", th, "Choose a theme from a list", theme.Pick(themeDeps))

	logDeps := logs.DefaultDeps(a.Output, paths.LogFileNextTo(a.Store.Path()), prompter.Confirm)
	lg := dispatchers.NewBranch("logs", root, "")
	dispatchers.NewLeaf("view", lg, "Show recent log lines: view [count]", logs.View(logDeps))
	dispatchers.NewLeaf("clear", lg, "Empty the log file", logs.Clear(logDeps))

	deps := actions.DefaultDeps(a.Config, a.Output, a.Writer.Clear, app.Version, a.Interrupts)
	dispatchers.NewLeaf("pkg", root, "Installed package version: pkg <name>...", actions.Package(deps))
	dispatchers.NewLeaf("date", root, "Today's date", actions.Date(deps))
	dispatchers.NewLeaf("time", root, "Current time", actions.Time(deps))
	dispatchers.NewLeaf("clear", root, "Clear the screen", actions.Clear(deps))
	dispatchers.NewLeaf("version", root, "Show iu version", actions.ShowVersion(deps))

	return root
}
