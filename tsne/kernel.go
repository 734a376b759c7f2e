// SPDX-License-Identifier: MIT
package tsne

import (
	"context"
	"math"

	"github.com/katalvlaran/manifold/internal/parallel"
	"github.com/katalvlaran/manifold/matrix"
)

// workspace holds the per-run buffers. Every buffer is row-owned: kernels
// write row i only from the worker handling row i.
type workspace struct {
	n, d    int
	dof     float64
	expo    float64 // (dof+1)/2
	c       float64 // 2(1+dof)/dof
	workers int
	eps     float64

	dist    *matrix.Dense // low-dimensional squared distances, n×n
	q       *matrix.Dense // low-dimensional similarities, n×n
	grad    *matrix.Dense // raw gradient, n×d
	scaled  *matrix.Dense // gain-scaled gradient, n×d
	next    *matrix.Dense // candidate embedding, n×d
	partial []float64     // per-row Σ_j unnormalised q
}

func newWorkspace(n, d, workers int) (*workspace, error) {
	dof := math.Max(float64(d-1), 1)
	ws := &workspace{
		n:       n,
		d:       d,
		dof:     dof,
		expo:    (dof + 1) / 2,
		c:       2 * (1 + dof) / dof,
		workers: workers,
		eps:     DefaultEpsilon,
		partial: make([]float64, n),
	}
	var err error
	if ws.dist, err = matrix.NewDense(n, n); err != nil {
		return nil, err
	}
	if ws.q, err = matrix.NewDense(n, n); err != nil {
		return nil, err
	}
	for _, m := range []**matrix.Dense{&ws.grad, &ws.scaled, &ws.next} {
		if *m, err = matrix.NewDense(n, d); err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// similarities fills q with q_ij = (1 + d_ij/dof)^-expo / (2·Σ_kl ·), the
// sum running over the whole matrix, and floors every entry at eps.
// The diagonal is zero before the floor; the gradient never reads it.
// ws.dist must be current.
func (ws *workspace) similarities(ctx context.Context) error {
	n := ws.n
	dist, q := ws.dist.RawData(), ws.q.RawData()

	err := parallel.Rows(ctx, n, ws.workers, func(i int) error {
		var s float64
		base := i * n
		for j := 0; j < n; j++ {
			if j == i {
				q[base+j] = 0
				continue
			}
			v := math.Pow(1+dist[base+j]/ws.dof, -ws.expo)
			q[base+j] = v
			s += v
		}
		ws.partial[i] = s

		return nil
	})
	if err != nil {
		return err
	}

	var total float64
	for _, s := range ws.partial {
		total += s
	}
	z := 2 * total
	if z < ws.eps {
		z = ws.eps
	}

	err = parallel.Rows(ctx, n, ws.workers, func(i int) error {
		row := q[i*n : (i+1)*n]
		for j := range row {
			row[j] /= z
		}

		return nil
	})
	if err != nil {
		return err
	}

	return matrix.ClampMin(ws.q, ws.eps)
}

// gradient fills ws.grad with c·Σ_j (p_ij − q_ij)·k_ij·(y_i − y_j).
// k_ij is the low-dimensional distance d_ij, or the Student-t weight
// (1 + d_ij/dof)^-1 when studentT is set.
func (ws *workspace) gradient(ctx context.Context, p, y *matrix.Dense, studentT bool) error {
	n, d := ws.n, ws.d
	pd, qd, dist := p.RawData(), ws.q.RawData(), ws.dist.RawData()

	return parallel.Rows(ctx, n, ws.workers, func(i int) error {
		g := ws.grad.Row(i)
		for k := range g {
			g[k] = 0
		}
		yi := y.Row(i)
		base := i * n
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			kij := dist[base+j]
			if studentT {
				kij = 1 / (1 + kij/ws.dof)
			}
			coef := (pd[base+j] - qd[base+j]) * kij
			if coef == 0 {
				continue
			}
			yj := y.Row(j)
			for k := 0; k < d; k++ {
				g[k] += coef * (yi[k] - yj[k])
			}
		}
		for k := range g {
			g[k] *= ws.c
		}

		return nil
	})
}

// step applies the gain rule, scales the gradient and writes the momentum
// update into velocity and the candidate embedding into ws.next.
// It reports whether every candidate coordinate is finite.
func (ws *workspace) step(ctx context.Context, y, velocity, gains *matrix.Dense, o *Options, momentum float64) (bool, error) {
	finiteRows := make([]bool, ws.n)
	err := parallel.Rows(ctx, ws.n, ws.workers, func(i int) error {
		g, s := ws.grad.Row(i), ws.scaled.Row(i)
		v, gn := velocity.Row(i), gains.Row(i)
		yi, nx := y.Row(i), ws.next.Row(i)
		ok := true
		for k := range g {
			if v[k]*g[k] > 0 {
				gn[k] *= o.GainBrake
			} else {
				gn[k] += o.GainAccelerate
			}
			if gn[k] < o.MinGain {
				gn[k] = o.MinGain
			}
			s[k] = gn[k] * g[k]
			v[k] = momentum*v[k] - o.LearningRate*s[k]
			nx[k] = yi[k] + v[k]
			if math.IsNaN(nx[k]) || math.IsInf(nx[k], 0) {
				ok = false
			}
		}
		finiteRows[i] = ok

		return nil
	})
	if err != nil {
		return false, err
	}
	for _, ok := range finiteRows {
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
