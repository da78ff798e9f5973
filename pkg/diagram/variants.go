package diagram

// DTNet returns the parameters for the DeepThinking Network diagram:
// a fixed iteration count and two residual sub-blocks.
func DTNet() Params {
	return Params{
		Title:            "DTNet",
		ResBlocks:        2,
		RecurrentCaption: "Recurrent Block  (× K iterations)",
		DefaultFile:      "dt_net_architecture.pdf",
	}
}

// ITNet returns the parameters for the Implicit Thinking Network diagram:
// four residual sub-blocks and a convergence stopping criterion in the
// recurrent-block caption.
func ITNet() Params {
	return Params{
		Title:            "ITNet",
		ResBlocks:        4,
		RecurrentCaption: "Recurrent Block  (× K iters, until ‖z⁽ᵏ⁾ − z⁽ᵏ⁻¹⁾‖ < ε)",
		DefaultFile:      "it_net_architecture.pdf",
	}
}

// Variants returns all diagram variants in generation order.
func Variants() []Params {
	return []Params{DTNet(), ITNet()}
}
