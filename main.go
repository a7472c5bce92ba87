// SPDX-License-Identifier: MPL-2.0

package main

import cmd "utemplate-cli/cmd/utemplate"

func main() {
	cmd.Execute()
}
