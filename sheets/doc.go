// Package sheets turns a published Google spreadsheet into flat records.
//
// A human-facing document URL is normalized into the list-feed endpoint,
// fetched once through an httpclient.Client (or any Getter), and the
// namespaced feed is reshaped:
//
//	{"feed":{"entry":[{"gsx$name":{"$t":"Alice"},"other":{"$t":"x"}}]}}
//
// becomes
//
//	[{"name":"Alice"}]
//
// Fields without the gsx$ prefix are dropped. A feed that does not have the
// expected structure is reported as an UNEXPECTED_SHAPE error rather than
// silently producing fewer records.
//
// Cell values are the $t members. String values are unquoted; any other
// JSON value keeps its literal text, so {"$t":12} becomes "12" and
// {"$t":null} becomes "null", indistinguishable from a cell holding the
// text null. Records carry strings only.
package sheets
