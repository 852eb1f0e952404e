// Package metrics records directory run statistics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics cost nothing unless a run asks for them:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	b := directory.NewBuilder(directory.WithRecorder(rec))
//	...
//	_ = metrics.WriteTextfile("/var/lib/node_exporter/phonedir.prom", reg)
//
// The textfile output is meant for the node_exporter textfile collector; a
// one-shot CLI has no process to scrape.
package metrics
