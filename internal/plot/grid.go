package plot

import (
	"math"
	"runtime"
	"sync"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
)

// sampleRows evaluates fn over the region's grid and writes one projected
// scalar row per selector into each destination grid. Rows are independent,
// so they are sampled by a bounded pool of workers; each worker writes only
// its own row indices, keeping the output deterministic.
func sampleRows(fn *expr.Compiled, region Region, resolution int, projections []cplx.Projection, grids [][][]Scalar) {
	dx := (region.XMax - region.XMin) / float64(max(resolution-1, 1))
	dy := (region.YMax - region.YMin) / float64(max(resolution-1, 1))

	workers := min(runtime.NumCPU(), resolution)
	rowCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rowCh {
				y := region.YMin + float64(j)*dy
				rows := make([][]Scalar, len(grids))
				for g := range grids {
					rows[g] = make([]Scalar, resolution)
				}
				for i := 0; i < resolution; i++ {
					x := region.XMin + float64(i)*dx
					z := fn.EvalOrInvalid(complex(x, y))
					for g, proj := range projections {
						rows[g][i] = Scalar(proj.Apply(z))
					}
				}
				for g := range grids {
					grids[g][j] = rows[g]
				}
			}
		}()
	}

	for j := 0; j < resolution; j++ {
		rowCh <- j
	}
	close(rowCh)
	wg.Wait()
}

// EvaluateDomainColoring samples f over the region and returns two
// row-major scalar grids, one per selected projection. A cell whose
// evaluation is non-finite holds NaN; the grid shape is never broken. An
// expression that fails to compile yields empty grids.
func EvaluateDomainColoring(config DomainColoringConfig) DomainColoringResult {
	if config.Resolution < 1 {
		return DomainColoringResult{ScalarGrid: [][]Scalar{}, ColorGrid: [][]Scalar{}}
	}

	fn, err := expr.CompileString(config.Expr, "z")
	if err != nil {
		return DomainColoringResult{ScalarGrid: [][]Scalar{}, ColorGrid: [][]Scalar{}}
	}

	scalarProj := config.Scalar
	if !scalarProj.Valid() {
		scalarProj = cplx.ProjModulus
	}
	colorProj := config.Color
	if !colorProj.Valid() {
		colorProj = cplx.ProjArgument
	}

	scalarGrid := make([][]Scalar, config.Resolution)
	colorGrid := make([][]Scalar, config.Resolution)
	sampleRows(fn, config.Region, config.Resolution,
		[]cplx.Projection{scalarProj, colorProj},
		[][][]Scalar{scalarGrid, colorGrid})

	return DomainColoringResult{ScalarGrid: scalarGrid, ColorGrid: colorGrid}
}

// EvaluateSurface3D samples f over the region and returns the axes plus
// height and color grids. Both projections come from the same evaluated
// value per cell; the function is never evaluated twice for one point.
func EvaluateSurface3D(config Surface3DConfig) Surface3DResult {
	empty := Surface3DResult{
		XAxis:      []float64{},
		YAxis:      []float64{},
		HeightGrid: [][]Scalar{},
		ColorGrid:  [][]Scalar{},
	}
	if config.Resolution < 1 {
		return empty
	}

	fn, err := expr.CompileString(config.Expr, "z")
	if err != nil {
		return empty
	}

	heightProj := config.Height
	if !heightProj.Valid() {
		heightProj = cplx.ProjModulus
	}
	colorProj := config.Color
	if !colorProj.Valid() {
		colorProj = cplx.ProjArgument
	}

	res := config.Resolution
	dx := (config.Region.XMax - config.Region.XMin) / float64(max(res-1, 1))
	dy := (config.Region.YMax - config.Region.YMin) / float64(max(res-1, 1))

	xAxis := make([]float64, res)
	yAxis := make([]float64, res)
	for i := 0; i < res; i++ {
		xAxis[i] = config.Region.XMin + float64(i)*dx
		yAxis[i] = config.Region.YMin + float64(i)*dy
	}

	heightGrid := make([][]Scalar, res)
	colorGrid := make([][]Scalar, res)
	sampleRows(fn, config.Region, res,
		[]cplx.Projection{heightProj, colorProj},
		[][][]Scalar{heightGrid, colorGrid})

	return Surface3DResult{
		XAxis:      xAxis,
		YAxis:      yAxis,
		HeightGrid: heightGrid,
		ColorGrid:  colorGrid,
	}
}

// InvalidCells counts grid cells holding the invalid marker.
func InvalidCells(grid [][]Scalar) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if math.IsNaN(float64(cell)) || math.IsInf(float64(cell), 0) {
				n++
			}
		}
	}
	return n
}
