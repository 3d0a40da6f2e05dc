// Package logx is the bot's structured logger.
//
// It is a small wrapper (logx.Logger) on top of zerolog that keeps console
// output readable (short timestamp + short caller) and can switch to JSON
// lines when the bot runs under a log collector.
package logx
