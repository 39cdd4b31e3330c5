// Package errorkit holds the error value helpers shared by the examples.
package errorkit
