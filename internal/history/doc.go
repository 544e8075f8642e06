// Package history persists per-file conversion outcomes in a local
// SQLite database so past batches can be reviewed with the history
// command.
package history
