// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FigfileNotFoundId Id = iota + 1
	FigfileParseErrorId
	ValueNotAllowedId
	ConfigLoadFailedId
	EmissionFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the figgo documentation
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	figfileNotFoundIssue = &Issue{
		id: FigfileNotFoundId,
		mdMsg: `
# No figfile found!

We searched for a predicate manifest but couldn't find one.

## Search locations (in order of precedence):
1. The path given on the command line
2. The filename configured as ` + "`figfile_name`" + ` in your config file
3. figfile.cue in the current directory

## Things you can try:
- Create a figfile in your current directory:
~~~
$ figgo init
~~~

- Or point figgo at an existing manifest:
~~~
$ figgo emit path/to/figfile.cue
~~~`,
	}

	figfileParseErrorIssue = &Issue{
		id: FigfileParseErrorId,
		mdMsg: `
# Failed to parse figfile!

Your figfile contains syntax errors or invalid declarations.

## Common issues:
- Invalid CUE/TOML syntax (missing quotes, braces, etc.)
- Predicate names that don't match the identifier grammar
  (letters, digits, underscore; must not start with a digit)
- An empty or duplicated values list
- Conflicting fields (for example both value and from_env)

## Things you can try:
- Check the error message above for the specific field
- Validate the manifest without emitting:
~~~
$ figgo check
~~~

## Example of a valid predicate:
~~~cue
predicates: [
	{
		name: "build_profile"
		values: ["debug", "release"]
		value: "release"
	},
]
~~~`,
	}

	valueNotAllowedIssue = &Issue{
		id: ValueNotAllowedId,
		mdMsg: `
# Activation value not allowed!

A predicate was activated with a value outside its declared set.

## Things you can try:
- Add the value to the predicate's values list in the figfile
- Fix the activation value (or the environment variable it comes from)
- Use allow_unset if activation without a value should be legal:
~~~cue
predicates: [
	{
		name: "level"
		values: ["low", "high"]
		allow_unset: true
	},
]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the figgo configuration file.

## Configuration file locations:
- Linux: ~/.config/figgo/config.cue
- macOS: ~/Library/Application Support/figgo/config.cue
- Windows: %APPDATA%\figgo\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ figgo config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
figfile_name: "figfile.cue"

ui: {
	color_scheme: "auto"
	verbose: false
}
~~~`,
	}

	emissionFailedIssue = &Issue{
		id: EmissionFailedId,
		mdMsg: `
# Failed to write directives!

The directive stream could not be written. Without it the build
orchestrator never learns about your predicates, so the build must stop.

## Common causes:
- The output file is not writable
- A closed or broken pipe on stdout

## Things you can try:
- Check permissions on the --output path
- Re-run with --verbose for the underlying I/O error`,
	}

	issues = map[Id]*Issue{
		figfileNotFoundIssue.Id():   figfileNotFoundIssue,
		figfileParseErrorIssue.Id(): figfileParseErrorIssue,
		valueNotAllowedIssue.Id():   valueNotAllowedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		emissionFailedIssue.Id():    emissionFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
