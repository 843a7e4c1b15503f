// Package provenance tracks where generated code fragments come from.
//
// Every template build site owns a Location token. Tokens are compared by
// identity, never by field value, and live for the whole process. The debug
// renderer asks the Registry for a stable display colour per token so that
// output can be traced back to the template that produced it.
package provenance
