package version

import (
	"github.com/k0kubun/go-ansi"
	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/version"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints build details and the kernels this cpu can run.
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) Execute(args []string) error {
	PrintVersion()
	ansi.Printf(DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	ansi.Printf(DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	ansi.Printf(DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion())
	ansi.Printf(DarkGray+" Encode      "+White+"%+v"+Reset+"\n", rapidb64.EncodeKernel())
	ansi.Printf(DarkGray+" Decode      "+White+"%+v"+Reset+"\n", rapidb64.DecodeKernel())
	ansi.Printf(DarkGray+" Kernels     "+White+"%+v"+Reset+"\n", rapidb64.Kernels())
	return nil
}

func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" RAPIDB64 "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+DarkGray+"/"+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitBranch, version.GitCommit)
}
