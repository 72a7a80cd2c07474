// Package summary ranks the paragraphs or sentences of a text by word
// frequency and stitches the highest scoring ones back together in reading
// order.
//
// The pipeline is deliberately simple:
//   - count every token of the body (see textutil.SplitWords)
//   - drop the tokens named by the exclusion list
//   - split the body into units according to a Mode
//   - score each unit as the sum of its tokens' counts
//   - stable-sort units by descending score, keep the first N, restore
//     their original order, and join them with a blank line
//
// Everything is computed per call; nothing is cached or shared between
// invocations. Only reading the two text sources can fail.
package summary
