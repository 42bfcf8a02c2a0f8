// Package header provides the shared resource header embedded in all
// serialized results (compare reports, parsed version fields, sort results).
//
// The header carries a Kind discriminator, an APIVersion for schema
// evolution, and a Metadata map populated with a unique run id, timestamp,
// and tool version. It follows Kubernetes-style resource conventions so the
// yaml/json output remains self-describing.
package header
