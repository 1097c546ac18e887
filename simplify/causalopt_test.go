package simplify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxcalc/flow"
	"github.com/katalvlaran/zxcalc/heuristic"
	"github.com/katalvlaran/zxcalc/phase"
	"github.com/katalvlaran/zxcalc/simplify"
	"github.com/katalvlaran/zxcalc/zxgraph"
)

// TestCausalFlowOpt_RejectsFlowlessInput verifies the startup check: a
// two-in one-out funnel has no causal flow and aborts with the sentinel.
func TestCausalFlowOpt_RejectsFlowlessInput(t *testing.T) {
	g := zxgraph.New()
	in0, _ := g.AddInput(0)
	in1, _ := g.AddInput(1)
	out, _ := g.AddOutput(0)
	z := g.AddVertex(zxgraph.Z, phase.New(1, 4))
	require.NoError(t, g.AddEdge(in0.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(in1.ID, z.ID, zxgraph.Simple))
	require.NoError(t, g.AddEdge(z.ID, out.ID, zxgraph.Simple))

	err := simplify.CausalFlowOpt(g, 1, 1, simplify.DefaultOptions())
	assert.ErrorIs(t, err, simplify.ErrNoCausalFlow)
}

// TestCausalFlowOpt_PreservesFlow runs the optimizer on a cluster
// diagram and locks the invariant: the result still admits a causal flow
// and the 2Q cost never increased.
func TestCausalFlowOpt_PreservesFlow(t *testing.T) {
	g := clusterLine(t, phase.New(1, 4), phase.PiHalf())
	costBefore := heuristic.TwoQCost(g)

	err := simplify.CausalFlowOpt(g, 1, 1, simplify.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, g.IsValid())
	assert.True(t, flow.HasCausalFlow(g), "every accepted rewrite preserves the flow")
	assert.LessOrEqual(t, heuristic.TwoQCost(g), costBefore,
		"only positive-score rewrites are applied")
}

// TestCausalFlowOpt_Terminates exercises a denser diagram: three qubits,
// entangling edges in both columns, non-Clifford phases sprinkled in.
func TestCausalFlowOpt_Terminates(t *testing.T) {
	g := zxgraph.New()
	var rows [][]int
	for q := 0; q < 3; q++ {
		in, err := g.AddInput(q)
		require.NoError(t, err)
		out, err := g.AddOutput(q)
		require.NoError(t, err)

		var ids []int
		prev, et := in.ID, zxgraph.Simple
		for i := 0; i < 4; i++ {
			p := phase.Zero()
			if (q+i)%3 == 1 {
				p = phase.New(1, 4)
			}
			z := g.AddVertex(zxgraph.Z, p)
			require.NoError(t, g.AddEdge(prev, z.ID, et))
			prev, et = z.ID, zxgraph.Hadamard
			ids = append(ids, z.ID)
		}
		require.NoError(t, g.AddEdge(prev, out.ID, zxgraph.Simple))
		rows = append(rows, ids)
	}
	require.NoError(t, g.AddEdge(rows[0][1], rows[1][1], zxgraph.Hadamard))
	require.NoError(t, g.AddEdge(rows[1][2], rows[2][2], zxgraph.Hadamard))
	require.True(t, flow.HasCausalFlow(g))

	err := simplify.CausalFlowOpt(g, 2, 1, simplify.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, flow.HasCausalFlow(g))
	assert.True(t, g.IsValid())
}

// TestCausalFlowOpt_Cancellation verifies a cancelled context leaves a
// consistent graph.
func TestCausalFlowOpt_Cancellation(t *testing.T) {
	g := clusterLine(t, phase.New(1, 4), phase.New(1, 8))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := simplify.CausalFlowOpt(g, 1, 1, simplify.Options{Ctx: ctx})

	require.NoError(t, err, "cancellation is not an error")
	assert.True(t, g.IsValid())
}
