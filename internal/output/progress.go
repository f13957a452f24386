package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/vfg2006/snapchat-ads-report/internal/usecases/reporting"
	"golang.org/x/term"
)

// Progress acompanha o pipeline com um spinner no stderr. Fora de um terminal
// (ou com quiet) não escreve nada.
type Progress struct {
	out     io.Writer
	spinner *spinner.Spinner
}

func NewProgress(out *os.File, quiet bool) *Progress {
	if quiet || !term.IsTerminal(int(out.Fd())) {
		return &Progress{}
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out))
	s.Prefix = "["

	return &Progress{out: out, spinner: s}
}

func (p *Progress) Enabled() bool {
	return p.spinner != nil
}

// Observe recebe as transições do reporting.Service.
func (p *Progress) Observe(event reporting.ProgressEvent) {
	if p.spinner == nil {
		return
	}

	switch event.Stage {
	case reporting.StageInit:
		p.spinner.Suffix = "] exchanging refresh token..."
		p.spinner.Start()
	case reporting.StageTokenAcquired:
		p.spinner.Suffix = "] listing campaigns..."
	case reporting.StageCampaignsListed:
		p.spinner.Suffix = fmt.Sprintf("] %d campaigns found", event.Total)
	case reporting.StageFetching:
		p.spinner.Suffix = fmt.Sprintf("] %d/%d campaigns, %d rows...", event.Index, event.Total, event.Rows)
	case reporting.StageDone:
		p.spinner.Stop()
		fmt.Fprintf(p.out, "[%s] %d campaigns, %d rows\n", color.GreenString("✔"), event.Total, event.Rows)
	case reporting.StageAborted:
		p.spinner.Stop()
		fmt.Fprintf(p.out, "[%s] run aborted\n", color.RedString("✗"))
	}
}
