package emitter

import (
	"bytes"
	"fmt"

	"github.com/sopack/sopack/internal/layout"
	"github.com/sopack/sopack/internal/models"
)

// Fixed maintainer identity embedded in every build descriptor
const (
	maintainerName  = "Embedded Build Team"
	maintainerEmail = "builds@sopack.dev"
)

// RenderSetup creates the setup.py build descriptor consumed by the wheel
// builder. All metadata fields and the grouped file listing are embedded
// as literal values.
func RenderSetup(meta *models.Metadata, listing *layout.FileListing) []byte {
	var buf bytes.Buffer

	buf.WriteString("from setuptools import setup\n")
	buf.WriteString("\n")
	buf.WriteString("setup(\n")
	fmt.Fprintf(&buf, "    name=%q,\n", meta.Name)
	fmt.Fprintf(&buf, "    version=%q,\n", meta.Version)
	fmt.Fprintf(&buf, "    license=%q,\n", meta.License)
	fmt.Fprintf(&buf, "    url=%q,\n", meta.URL)
	fmt.Fprintf(&buf, "    maintainer=%q,\n", maintainerName)
	fmt.Fprintf(&buf, "    maintainer_email=%q,\n", maintainerEmail)
	fmt.Fprintf(&buf, "    long_description=%q,\n", meta.Description)
	buf.WriteString("    long_description_content_type=\"text/markdown\",\n")

	buf.WriteString("    install_requires=[\n")
	for _, req := range meta.InstallRequires {
		fmt.Fprintf(&buf, "        %q,\n", req)
	}
	buf.WriteString("    ],\n")

	buf.WriteString("    data_files=[\n")
	for _, dir := range listing.SortedDirs() {
		fmt.Fprintf(&buf, "        (%q, [\n", dir)
		for _, file := range listing.Dirs[dir] {
			fmt.Fprintf(&buf, "            %q,\n", file)
		}
		buf.WriteString("        ]),\n")
	}
	buf.WriteString("    ],\n")

	buf.WriteString(")\n")

	return buf.Bytes()
}
