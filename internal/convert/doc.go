// Package convert drives the external transcoding engine: one ffmpeg
// invocation per file, run strictly sequentially, with per-file outcomes
// tallied and recorded.
package convert
