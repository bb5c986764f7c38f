/*
Package skiggle is about recognizing single handwritten characters from
pen strokes, without a trained model.

Description

Skiggle looks at the ink of one character the way a person explaining
handwriting to a child would: a '7' is a horizontal bar with a slash
hanging from its right end, a 'T' is a horizontal bar with a vertical
line starting at its middle, and so on. Recognition therefore proceeds
in three steps.

(1) Every stroke is decomposed into primitive shapes: vertical and
horizontal lines, forward and backward slashes, forward and backward
C-curves, circles, dots and U-curves. Decomposition works on the
curvature of the stroke, sampled at equidistant points along its
arc length. Wherever curvature jumps, the stroke is split.

(2) Every primitive shape is associated with the set of characters of an
alphabet which contain that shape. Intersecting the sets for all
segments of a character (and the set of characters made up of that many
segments) leaves a short list of candidates.

(3) Each candidate has a verifier, a small geometric rule checking where
the segments are located relative to each other. The first candidate
whose verifier passes is the recognized character.

The approach is cheap and explainable, but it depends on stroke order and
on writing characters in a "standard" way. It is not meant to compete
with statistical recognizers.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package skiggle provides the vocabulary shared by all the other
packages: points, rectangles, strokes parameterized by arc length,
primitive shape codes, classified segments, and the protocol for
verifiers. Geometric helper functions (distance, angles, curvature)
live here, too.

The segment classifier sits in sub-package segment. Candidate narrowing
is done in package candidates, using bit-sets (one per primitive shape)
taken from an alphabet configuration (package alphabet). Alphabets come
as modules, which bundle a configuration with a table of verifiers.
Package latin holds the reference module for digits, ASCII letters and
punctuation, package han a small module for Chinese numerals.

Package character accumulates the strokes of one character and runs
recognition. Package engine is the front door for clients: it manages
handles for characters-in-progress and hands out pooled accumulators.

Coordinates

All coordinates are screen coordinates: x grows to the right, y grows
downwards. Consequently a back-slash '\' has a tangent angle of about 45°,
and a forward slash '/' one of about 135°. "Top" of a segment is the end
with the smaller y-coordinate.

Tracing

All packages trace to selectors named "skiggle.<package>", using
schuko's tracing facade. Clients decide which adapter to install.
*/
package skiggle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer of the skiggle packages.
func tracer() tracing.Trace {
	return tracing.Select("skiggle.core")
}
