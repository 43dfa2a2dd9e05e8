// Command llrpgen compiles an LLRP XML definition file into a Go package
// set implementing the wire types it describes.
package main

import "github.com/llrp-go/llrp/cmd/llrpgen/cmd"

func main() {
	cmd.Execute()
}
