// Package logging builds the zap logger used by the fpgareg commands and
// adapts it to the small Logger interfaces of the library packages.
//
//	zl, err := logging.New(verbose)
//	if err != nil {
//	    return err
//	}
//	defer zl.Sync()
//
//	log := logging.NewAdapter(zl)
//	ch, err := channel.Open(port, baud, channel.WithLogger(log.Named("channel")))
package logging
