package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path"`

	ListTools *ListToolsCmd `command:"list-tools" description:"List registered exchange tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one exchange tool"`
	Call      *CallCmd      `command:"call"       description:"Invoke an exchange tool and print its result"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the exchange tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "call":
		o.Call = &CallCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
