// Package mdtype renders Markdown progressively, one character at a time.
//
// Text arrives in arbitrary chunks, as it does from a model generating
// tokens. A Session splits each chunk into runes and hands every rune to the
// Parser, a small state machine that answers with an Instruction: swallow the
// rune as syntax, open a new node chain, or append to the current leaf. The
// Bridge applies instructions to a Target, which may be an in-memory Tree, a
// LiveRenderer drawing to a terminal, or any other structure.
//
// Core properties:
//   - Every prefix of the input has a stable render; nothing is re-parsed
//   - Chunk boundaries never change the result
//   - Parser memory is bounded by a four-rune lookback
//   - Headings and fenced code blocks only; everything else is text
//
// Example:
//
//	tree := mdtype.NewTree()
//	sess := mdtype.NewSession(tree, mdtype.WithPrimedLeaf("p"))
//	for chunk := range mdtype.Chunks("## Hi\nthere\n", 2, 20, nil) {
//		if _, err := sess.WriteString(chunk); err != nil {
//			log.Fatal(err)
//		}
//	}
//	if err := sess.Close(); err != nil {
//		log.Fatal(err)
//	}
//	_ = tree.WriteHTML(os.Stdout)
//
// The character that triggers a new node is written into that node. A heading
// therefore starts with the space after its hashes, and the newline ending a
// heading or a code fence starts the following paragraph. Fence backticks are
// ordinary text; only the info string after an opening fence is consumed.
package mdtype
