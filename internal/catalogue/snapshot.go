package catalogue

import "github.com/venclov/acs-ass2/internal/book"

// toStockBook builds the stock-manager projection of rec. Caller must
// hold at least a read lock on rec's Lockable.
func toStockBook(rec *book.Book) StockBook {
	return StockBook{
		ISBN:          rec.ISBN(),
		Title:         rec.Title(),
		Author:        rec.Author(),
		Price:         rec.Price(),
		NumCopies:     rec.NumCopies(),
		NumSaleMisses: rec.NumSaleMisses(),
		TotalRating:   rec.TotalRating(),
		NumTimesRated: rec.NumTimesRated(),
		EditorPick:    rec.EditorPick(),
	}
}

// toClientBook builds the purchase-side projection of rec. Caller must
// hold at least a read lock on rec's Lockable.
func toClientBook(rec *book.Book) Book {
	return Book{
		ISBN:   rec.ISBN(),
		Title:  rec.Title(),
		Author: rec.Author(),
		Price:  rec.Price(),
	}
}
