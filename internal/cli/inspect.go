package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		preview     int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the section tree of a blueprint container",
		Long: `Decode a blueprint container and print its blocks, sections and entries.

The file may be a prefab document, a base64 payload or a raw binary container.
Sections of breadboard blocks are labelled with the component they hold.

With --interactive on a terminal, sections are listed in a browser where
enter expands a section's entries. Without a terminal the tree is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if preview < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--preview must not be negative, got %d", preview)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", args[0])
			}
			bp, err := decodeDocument(data)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("decoded container", "file", args[0], "blocks", bp.Len())

			out := cmd.OutOrStdout()
			if interactive {
				if isTerminal(out) {
					return browseSections(cmd.Context(), cmd.InOrStdin(), out, bp, preview)
				}
				logger.Debug("output is not a terminal, printing tree")
			}
			printTree(out, bp, preview)
			return nil
		},
	}

	cmd.Flags().IntVar(&preview, "preview", 16, "bytes of each entry to show")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse sections interactively")

	return cmd
}

// decodeDocument accepts a prefab document, a base64 payload or a raw
// binary container.
func decodeDocument(data []byte) (*blueprint.Blueprint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc struct {
			Blueprint struct {
				BlockData string
			}
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse prefab document")
		}
		return blueprint.DecodeBase64(doc.Blueprint.BlockData)
	}
	if bp, err := blueprint.DecodeBase64(string(trimmed)); err == nil {
		return bp, nil
	}
	return blueprint.Decode(data)
}

// sectionRow is one section of a decoded container with its display label.
type sectionRow struct {
	block blueprint.BlockIndex
	id    blueprint.SectionID
	label string
	sec   *blueprint.Section
}

// sectionRows flattens bp in emission order. Node sections of breadboard
// blocks are labelled with their component, the main section with "main".
// Reserved sections stay unlabelled.
func sectionRows(bp *blueprint.Blueprint) []sectionRow {
	var rows []sectionRow
	for _, idx := range bp.Indices() {
		blk, _ := bp.Lookup(idx)
		names := componentNames(blk)
		for _, id := range blk.IDs() {
			sec, _ := blk.Lookup(id)
			label := names[id]
			if id == breadboard.MainSection {
				label = "main"
			}
			rows = append(rows, sectionRow{block: idx, id: id, label: label, sec: sec})
		}
	}
	return rows
}

func printTree(w io.Writer, bp *blueprint.Blueprint, preview int) {
	fmt.Fprintln(w, StyleTitle.Render("blueprint")+" "+StyleDim.Render(plural(bp.Len(), "block")))

	rows := sectionRows(bp)
	for _, idx := range bp.Indices() {
		blk, _ := bp.Lookup(idx)
		fmt.Fprintf(w, "%s %s %s\n", StyleTitle.Render("block"), StyleID.Render(fmt.Sprint(idx)),
			StyleDim.Render(plural(blk.Len(), "section")))

		for _, r := range rows {
			if r.block != idx {
				continue
			}
			line := "  section " + StyleID.Render(fmt.Sprint(r.id))
			if r.label != "" {
				line += " " + StyleName.Render(r.label)
			}
			fmt.Fprintln(w, line+" "+StyleDim.Render(plural(r.sec.Len(), "entry")))
			for _, eid := range r.sec.IDs() {
				fmt.Fprintln(w, "    "+entryLine(r.sec, eid, preview))
			}
		}
	}
}

// entryLine renders one entry as "entry <id> <size> <payload>".
func entryLine(sec *blueprint.Section, id blueprint.EntryID, preview int) string {
	v, _ := sec.Get(id)
	b := rawBytes(v)
	return fmt.Sprintf("entry %s %s %s", StyleID.Render(fmt.Sprint(id)),
		StyleNumber.Render(fmt.Sprintf("%dB", len(b))), formatPayload(b, preview))
}

// componentNames maps node sections to component names using the main
// section of a breadboard block.
func componentNames(blk *blueprint.Block) map[blueprint.SectionID]string {
	names := make(map[blueprint.SectionID]string)
	main, ok := blk.Lookup(breadboard.MainSection)
	if !ok {
		return names
	}
	for i := 0; ; i += 2 {
		typ, ok1 := main.Get(blueprint.EntryID(i))
		sec, ok2 := main.Get(blueprint.EntryID(i + 1))
		if !ok1 || !ok2 {
			return names
		}
		id, err := blueprint.Raw(rawBytes(typ)).UUID()
		if err != nil {
			continue
		}
		n, err := blueprint.Raw(rawBytes(sec)).Uint32()
		if err != nil {
			continue
		}
		if name, ok := breadboard.ComponentName(codec.SwapGUID(id)); ok {
			names[blueprint.SectionID(n)] = name
		}
	}
}

func rawBytes(v blueprint.Value) []byte {
	if r, ok := v.(blueprint.Raw); ok {
		return r
	}
	return nil
}

// formatPayload shows printable text quoted and anything else as hex.
func formatPayload(b []byte, limit int) string {
	limit = max(limit, 0)
	if len(b) == 0 {
		return ""
	}
	if isText(b) {
		if len(b) > limit*4 {
			return fmt.Sprintf("%q…", b[:limit*4])
		}
		return fmt.Sprintf("%q", b)
	}
	if len(b) > limit {
		return StyleDim.Render(fmt.Sprintf("% x …", b[:limit]))
	}
	return StyleDim.Render(fmt.Sprintf("% x", b))
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if noun == "entry" {
		return fmt.Sprintf("%d entries", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
