package cmd

import (
	"fmt"
	"strings"

	"github.com/avm2rt/avm2core/pkg/avm2"
	"github.com/spf13/cobra"
)

var xmlDefaultNS string

var xmlCmd = &cobra.Command{
	Use:   "xml [markup]",
	Short: "Parse an E4X-style XML fragment and dump its node tree",
	Long: `Parse the given markup as a single XML element and print the
resulting node tree, one node per line, indented by depth.

Examples:
  avm2tool xml '<a x="1"><b>hi</b></a>'
  avm2tool xml --default-ns=urn:example '<a/>'`,
	Args: cobra.ExactArgs(1),
	RunE: parseXML,
}

func init() {
	rootCmd.AddCommand(xmlCmd)
	xmlCmd.Flags().StringVar(&xmlDefaultNS, "default-ns", "", "default namespace URI for unprefixed names")
}

func parseXML(_ *cobra.Command, args []string) error {
	root, err := avm2.ParseXMLElement(args[0], xmlDefaultNS)
	if err != nil {
		return fmt.Errorf("parsing xml: %w", err)
	}
	dumpNode(root, 0)
	return nil
}

func dumpNode(n *avm2.XMLNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case avm2.XMLNodeElement:
		fmt.Printf("%s<%s>", indent, n.Name.Local)
		for _, a := range n.Attributes {
			fmt.Printf(" %s=%q", a.Name.Local, a.Value)
		}
		fmt.Println()
	case avm2.XMLNodeText:
		fmt.Printf("%s#text %q\n", indent, n.Text)
	case avm2.XMLNodeCDATA:
		fmt.Printf("%s#cdata %q\n", indent, n.Text)
	case avm2.XMLNodeComment:
		fmt.Printf("%s#comment %q\n", indent, n.Text)
	case avm2.XMLNodeProcessingInstruction:
		fmt.Printf("%s#pi %s %q\n", indent, n.Name.Local, n.Text)
	}
	for _, child := range n.Children {
		dumpNode(child, depth+1)
	}
}
