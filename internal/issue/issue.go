// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ModuleNotFoundId Id = iota + 1
	InterpreterNotFoundId
	StartupFailedId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // must never be empty: every issue has a docs page
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the full Markdown page, including the "See also" section.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- " + string(link) + "\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- " + string(link) + "\n")
		}
	}
	return md.String()
}

// Render renders the issue page for a terminal using the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

const docsBase = "https://github.com/iechor-research/research-cli"

var (
	render = glamour.Render

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Research CLI module not found!

The ` + "`research`" + ` launcher could not find the Research CLI application
(` + "`dist/index.js`" + `) in any of its search locations.

## Search locations (in order of precedence):
1. ` + "`$RESEARCH_CLI_HOME`" + ` (packages/cli/dist/index.js, dist/index.js, index.js)
2. Next to the launcher binary (lib/research-cli/..., packages/cli/...) and one level up
3. System paths: /usr/local/lib/research-cli, /opt/research-cli, /usr/lib/research-cli
4. User paths: ~/.local/lib/research-cli, ~/.research-cli
5. Windows only: %APPDATA%\research-cli
6. ` + "`search_paths`" + ` from the launcher configuration file

## Things you can try:
- Point the launcher at an existing installation:
~~~
$ export RESEARCH_CLI_HOME=/path/to/research-cli
~~~

- Build from source:
~~~
$ git clone https://github.com/iechor-research/research-cli
$ cd research-cli && npm install && npm run build
$ export RESEARCH_CLI_HOME=$PWD
~~~

- Run the installer:
~~~
$ curl -fsSL https://raw.githubusercontent.com/iechor-research/research-cli/main/install.sh | sh
~~~

- Install manually by copying a built release to one of the system or user
  paths above, e.g. ` + "`~/.local/lib/research-cli`" + `.`,
		docLinks: []HttpLink{docsBase + "#installation"},
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Node.js not available!

The Research CLI is a Node.js application, but the interpreter could not be
found on your PATH or did not answer a version check.

## Requirements:
- **Node.js 20 or newer** is recommended

## Things you can try:
- Install Node.js:
  - Linux: ` + "`sudo apt install nodejs`" + ` or ` + "`sudo dnf install nodejs`" + `
  - macOS: ` + "`brew install node`" + `
  - Windows: Download from https://nodejs.org
  - Any platform: use a version manager such as nvm or fnm

- Check that it is reachable:
~~~
$ node --version
~~~

- Use a specific interpreter binary:
~~~
$ export RESEARCH_LAUNCHER_INTERPRETER=/opt/node/bin/node
~~~`,
		docLinks: []HttpLink{docsBase + "#requirements"},
		extLinks: []HttpLink{"https://nodejs.org/en/download"},
	}

	startupFailedIssue = &Issue{
		id: StartupFailedId,
		mdMsg: `
# Failed to start Research CLI!

The interpreter was found but the operating system refused to start it.

## Common causes:
- Permission denied on the interpreter binary
- A corrupted or partially installed Node.js
- An interpreter built for a different CPU architecture

## Things you can try:
- Run the interpreter directly to see the underlying error:
~~~
$ node --version
~~~

- Reinstall Node.js from https://nodejs.org
- Run with debug logging for more details:
~~~
$ RESEARCH_LAUNCHER_LOG_LEVEL=debug research
~~~`,
		docLinks: []HttpLink{docsBase + "#troubleshooting"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load launcher configuration!

The launcher configuration file could not be read; defaults were used instead.

## Configuration file locations:
- Linux: ~/.config/research-cli/config.cue
- macOS: ~/Library/Application Support/research-cli/config.cue
- Windows: %APPDATA%\research-cli\config.cue
- Or the file named by ` + "`RESEARCH_LAUNCHER_CONFIG`" + `

## Example configuration:
~~~cue
interpreter: "node"
min_version: "20.0.0"
search_paths: ["~/src/research-cli"]
log_level: "warn"
~~~`,
		docLinks: []HttpLink{docsBase + "#configuration"},
	}

	issues = map[Id]*Issue{
		moduleNotFoundIssue.Id():      moduleNotFoundIssue,
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		startupFailedIssue.Id():       startupFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns all catalog entries ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
