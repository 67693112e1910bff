// Command ideapadctl-writer is the privileged helper of ideapadctl. It is
// started through pkexec as "ideapadctl-writer set <parameter> <value>"
// and only ever writes one attribute file of the ideapad_laptop device.
package main

import (
	"os"

	"codeberg.org/mutker/ideapadctl/internal/writer"
)

func main() {
	os.Exit(writer.Default().Run(os.Args, os.Stderr))
}
