package board

// GenerateMoves produces all pseudo-legal moves for color's pieces, in piece-slot order.
// It does not filter out moves that leave the moving side's king in check: whether a side
// to move has run out of options is decided separately by the search driver's game-status
// check. Output is capped at MaxMoves; overflow is silently dropped.
func GenerateMoves(pos *Position, color Color) []Move {
	moves := make([]Move, 0, 32)
	for i := range pos.Pieces {
		pc := &pos.Pieces[i]
		if !pc.Alive || pc.Color != color {
			continue
		}
		generatePieceMoves(pos, i, &moves)
	}
	return moves
}

// GenerateMovesForPiece produces the pseudo-legal moves of a single piece slot, with no
// per-color cap. Used by the evaluator's control term, which needs each piece's own
// mobility independent of its neighbors'.
func GenerateMovesForPiece(pos *Position, i int) []Move {
	var moves []Move
	if !pos.Pieces[i].Alive {
		return moves
	}
	generatePieceMoves(pos, i, &moves)
	return moves
}

func appendMove(moves *[]Move, m Move) {
	if len(*moves) >= MaxMoves {
		return
	}
	*moves = append(*moves, m)
}

func generatePieceMoves(pos *Position, i int, moves *[]Move) {
	pc := &pos.Pieces[i]
	switch pc.Kind {
	case Pawn:
		generatePawnMoves(pos, pc, moves)
	case Knight:
		generateKnightMoves(pos, pc, moves)
	case Bishop:
		generateSlidingMoves(pos, pc, moves, diagonalDirs)
	case Rook:
		generateSlidingMoves(pos, pc, moves, orthogonalDirs)
	case Queen:
		generateSlidingMoves(pos, pc, moves, diagonalDirs)
		generateSlidingMoves(pos, pc, moves, orthogonalDirs)
	case King:
		generateKingMoves(pos, i, pc, moves)
	}
}

func generatePawnMoves(pos *Position, pc *PieceState, moves *[]Move) {
	direction := 1
	if pc.Color == Black {
		direction = -1
	}
	col, row := pc.Square.Col, pc.Square.Row

	oneForward := Square{Col: col, Row: row + direction}
	if oneForward.IsValid() && pos.IsEmpty(oneForward) {
		appendMove(moves, Move{From: pc.Square, To: oneForward, Promotion: promotionFor(oneForward)})

		twoForward := Square{Col: col, Row: row + 2*direction}
		if !pc.Moved && twoForward.IsValid() && pos.IsEmpty(twoForward) {
			appendMove(moves, Move{From: pc.Square, To: twoForward, Promotion: NoPiece})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := Square{Col: col + dc, Row: row + direction}
		if !target.IsValid() {
			continue
		}

		if ti, ok := pos.At(target); ok && pos.Pieces[ti].Color != pc.Color {
			appendMove(moves, Move{From: pc.Square, To: target, Promotion: promotionFor(target)})
			continue
		}

		ep := pos.EnPassant
		if ep.Set && ep.Target == target && pos.IsEmpty(target) {
			if ci, ok := pos.At(ep.Capture); ok {
				cap := &pos.Pieces[ci]
				if cap.Kind == Pawn && cap.Color != pc.Color && ep.Capture.Row == row {
					appendMove(moves, Move{From: pc.Square, To: target, Promotion: NoPiece})
				}
			}
		}
	}
}

func promotionFor(to Square) Piece {
	if to.Row == 0 || to.Row == 7 {
		return Queen
	}
	return NoPiece
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

func generateKnightMoves(pos *Position, pc *PieceState, moves *[]Move) {
	for _, d := range knightOffsets {
		to := Square{Col: pc.Square.Col + d[0], Row: pc.Square.Row + d[1]}
		if !to.IsValid() {
			continue
		}
		if ti, ok := pos.At(to); !ok || pos.Pieces[ti].Color != pc.Color {
			appendMove(moves, Move{From: pc.Square, To: to, Promotion: NoPiece})
		}
	}
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func generateSlidingMoves(pos *Position, pc *PieceState, moves *[]Move, dirs [4][2]int) {
	for _, d := range dirs {
		to := Square{Col: pc.Square.Col + d[0], Row: pc.Square.Row + d[1]}
		for to.IsValid() {
			ti, occupied := pos.At(to)
			if !occupied {
				appendMove(moves, Move{From: pc.Square, To: to, Promotion: NoPiece})
			} else {
				if pos.Pieces[ti].Color != pc.Color {
					appendMove(moves, Move{From: pc.Square, To: to, Promotion: NoPiece})
				}
				break
			}
			to = Square{Col: to.Col + d[0], Row: to.Row + d[1]}
		}
	}
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func generateKingMoves(pos *Position, i int, pc *PieceState, moves *[]Move) {
	for _, d := range kingOffsets {
		to := Square{Col: pc.Square.Col + d[0], Row: pc.Square.Row + d[1]}
		if !to.IsValid() {
			continue
		}
		if ti, ok := pos.At(to); !ok || pos.Pieces[ti].Color != pc.Color {
			appendMove(moves, Move{From: pc.Square, To: to, Promotion: NoPiece})
		}
	}

	if pc.Moved {
		return
	}
	homeRow := 0
	if pc.Color == Black {
		homeRow = 7
	}
	if pc.Square.Col != 4 || pc.Square.Row != homeRow {
		return
	}

	// Castling: the generator does not verify that the king's path is attacked.
	if ri, ok := pos.At(Square{Col: 7, Row: homeRow}); ok {
		rook := &pos.Pieces[ri]
		if rook.Kind == Rook && rook.Color == pc.Color && !rook.Moved &&
			pos.IsEmpty(Square{Col: 5, Row: homeRow}) && pos.IsEmpty(Square{Col: 6, Row: homeRow}) {
			appendMove(moves, Move{From: pc.Square, To: Square{Col: 6, Row: homeRow}, Promotion: NoPiece})
		}
	}
	if ri, ok := pos.At(Square{Col: 0, Row: homeRow}); ok {
		rook := &pos.Pieces[ri]
		if rook.Kind == Rook && rook.Color == pc.Color && !rook.Moved &&
			pos.IsEmpty(Square{Col: 1, Row: homeRow}) && pos.IsEmpty(Square{Col: 2, Row: homeRow}) && pos.IsEmpty(Square{Col: 3, Row: homeRow}) {
			appendMove(moves, Move{From: pc.Square, To: Square{Col: 2, Row: homeRow}, Promotion: NoPiece})
		}
	}
}
