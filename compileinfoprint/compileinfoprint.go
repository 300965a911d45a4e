// compileinfoprint is imported by the radtidy commands for the side effect of
// printing their build information to os.Stderr.
package compileinfoprint

import "github.com/carbocation/radtidy/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
