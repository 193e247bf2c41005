// Package vertexcover exposes the native approximate vertex cover
// algorithms. Covers may be weighted: supply per-vertex weights through
// WithVertexWeights, any vertex left out costs 1. Results arrive decoded as
// application vertex identifiers together with the cover's total weight.
package vertexcover
