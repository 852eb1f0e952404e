package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
	"git.home.luguber.info/inful/phonedir/internal/nanp"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Numbers   []string `arg:"" name:"number" help:"Phone numbers to normalize"`
	FoldWidth bool     `name:"fold-width" help:"Treat full-width digits and letters as ASCII"`
}

func (c *CheckCmd) Run(g *Global) error {
	var opts []nanp.Option
	if c.FoldWidth {
		opts = append(opts, nanp.WithWidthFolding())
	}
	normalizer := nanp.NewNormalizer(opts...)

	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	rejected := 0
	for _, raw := range c.Numbers {
		n, err := normalizer.Normalize(raw)
		if err != nil {
			rejected++
			_, _ = fmt.Fprintf(tw, "%s\tinvalid\t%s\n", raw, rejectionDetail(err))
			continue
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", raw, n, n.E164(), n.Region())
	}
	if err := tw.Flush(); err != nil {
		return perrors.RenderError("write output").WithCause(err).Build()
	}

	if rejected > 0 {
		return perrors.ValidationError(fmt.Sprintf("%d of %d numbers rejected", rejected, len(c.Numbers))).Build()
	}
	return nil
}

func rejectionDetail(err error) string {
	reason := string(nanp.ReasonOf(err))
	classified, ok := perrors.AsClassified(err)
	if !ok {
		return reason
	}
	var details []string
	for _, key := range []string{"cleaned_length", "area_code", "exchange_code", "type"} {
		if v, ok := classified.Context().Get(key); ok {
			details = append(details, fmt.Sprintf("%s=%v", key, v))
		}
	}
	if len(details) == 0 {
		return reason
	}
	return reason + " (" + strings.Join(details, " ") + ")"
}
