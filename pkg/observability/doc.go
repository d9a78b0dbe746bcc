/*
Package observability provides hooks and Prometheus metrics for rep dispatch.

Hooks receive every resolution and every probe fault as they happen. Metrics
count resolutions per winning rep, fallbacks to the default rep and probe
faults per rep.
*/
package observability
