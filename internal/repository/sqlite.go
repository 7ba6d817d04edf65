package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
)

// SQLiteRepo is the durable SQLite-backed store for the marketplace.
// It implements AuctionDB, UserDB, NotificationDB and ReviewDB.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo creates a repository on top of an opened database.
func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

const auctionColumns = `id, title, description, category, image_urls, starting_bid,
	current_bid, end_time, seller_id, winner_id, status, created_at`

// ms converts a timestamp to the Unix-millisecond representation stored in SQLite.
func ms(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMS(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuction(row rowScanner) (model.Auction, error) {
	var (
		a         model.Auction
		images    string
		endTime   int64
		createdAt int64
		winner    sql.NullString
	)
	err := row.Scan(&a.AuctionID, &a.Title, &a.Description, &a.Category, &images,
		&a.StartingBid, &a.CurrentBid, &endTime, &a.SellerID, &winner, &a.Status, &createdAt)
	if err != nil {
		return model.Auction{}, err
	}
	if err := json.Unmarshal([]byte(images), &a.ImageURLs); err != nil {
		return model.Auction{}, fmt.Errorf("decoding image urls: %w", err)
	}
	a.EndTime = fromMS(endTime)
	a.CreatedAt = fromMS(createdAt)
	a.WinnerID = winner.String
	return a, nil
}

// GetAuction returns a single auction by id.
func (r *SQLiteRepo) GetAuction(auctionID string) (model.Auction, error) {
	row := r.db.QueryRow(`SELECT `+auctionColumns+` FROM auctions WHERE id = ?`, auctionID)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// GetAuctionBids returns the bid history for an auction, most recent first.
func (r *SQLiteRepo) GetAuctionBids(auctionID string) ([]model.Bid, error) {
	rows, err := r.db.Query(
		`SELECT id, auction_id, bidder_id, bidder_name, amount, created_at
		 FROM bids WHERE auction_id = ?
		 ORDER BY created_at DESC, amount DESC`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		var (
			b         model.Bid
			createdAt int64
		)
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.BidderName, &b.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
		}
		b.CreatedAt = fromMS(createdAt)
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// ListAuctions returns auctions matching the filter in the requested order.
func (r *SQLiteRepo) ListAuctions(f AuctionFilter) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	var conds []string
	var args []any

	if f.Search != "" {
		conds = append(conds, `(title LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE)`)
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}
	if f.Category != "" && f.Category != "All" {
		conds = append(conds, `category = ?`)
		args = append(args, f.Category)
	}
	if f.MinPrice != nil {
		conds = append(conds, `current_bid >= ?`)
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, `current_bid <= ?`)
		args = append(args, *f.MaxPrice)
	}
	if f.Status != "" {
		conds = append(conds, `status = ?`)
		args = append(args, f.Status)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}

	switch f.Sort {
	case SortPriceAsc:
		query += ` ORDER BY current_bid ASC`
	case SortPriceDesc:
		query += ` ORDER BY current_bid DESC`
	case SortEndingSoon:
		query += ` ORDER BY end_time ASC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	auctions := []model.Auction{}
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}

// PlaceBid atomically validates and commits a bid.
//
// The whole operation runs in one immediate transaction: the auction row is
// read (capturing the previous winner), the bid is re-validated against
// status, end time and the current threshold, the bid row is inserted, and the
// auction price/winner are updated with a conditional predicate. Expiry is
// re-checked inside the same transaction that writes current_bid, so a sweep
// flipping status concurrently can never orphan an in-flight bid, and two
// concurrent bids can never both commit against the same stale threshold.
func (r *SQLiteRepo) PlaceBid(bid model.Bid, now time.Time) (BidCommit, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT `+auctionColumns+` FROM auctions WHERE id = ?`, bid.AuctionID)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}

	if a.Status != model.StatusActive {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotActive)
	}
	if a.Expired(now) {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionExpired)
	}
	if bid.Amount <= a.CurrentBid {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w",
			bid.AuctionID, &auctionerrors.BidTooLow{Threshold: a.CurrentBid})
	}

	if _, err := tx.Exec(
		`INSERT INTO bids (id, auction_id, bidder_id, bidder_name, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.BidderName, bid.Amount, ms(bid.CreatedAt)); err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}

	res, err := tx.Exec(
		`UPDATE auctions SET current_bid = ?, winner_id = ?
		 WHERE id = ? AND status = 'active' AND end_time > ? AND current_bid < ?`,
		bid.Amount, bid.BidderID, bid.AuctionID, ms(now), bid.Amount)
	if err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}
	if n == 0 {
		// Unreachable inside an immediate transaction; kept as a guard so a
		// lost update can never slip through silently.
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w",
			bid.AuctionID, &auctionerrors.BidTooLow{Threshold: a.CurrentBid})
	}

	if err := tx.Commit(); err != nil {
		return BidCommit{}, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}

	prevWinner := a.WinnerID
	a.CurrentBid = bid.Amount
	a.WinnerID = bid.BidderID
	return BidCommit{Bid: bid, Auction: a, PrevWinnerID: prevWinner}, nil
}

// CloseIfExpired transitions an expired active auction to closed. The winner
// is never touched here; a last-moment accepted bid keeps its leader. Returns
// whether a transition happened. Idempotent.
func (r *SQLiteRepo) CloseIfExpired(auctionID string, now time.Time) (bool, error) {
	res, err := r.db.Exec(
		`UPDATE auctions SET status = 'closed'
		 WHERE id = ? AND status = 'active' AND end_time <= ?`, auctionID, ms(now))
	if err != nil {
		return false, fmt.Errorf("close auction %s: %w", auctionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("close auction %s: %w", auctionID, err)
	}
	return n > 0, nil
}

// ListExpired returns ids of active auctions whose end time has passed.
func (r *SQLiteRepo) ListExpired(now time.Time) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT id FROM auctions WHERE status = 'active' AND end_time <= ?`, ms(now))
	if err != nil {
		return nil, fmt.Errorf("list expired auctions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list expired auctions: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetUser resolves a user by id.
func (r *SQLiteRepo) GetUser(userID string) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(`SELECT id, username, email FROM users WHERE id = ?`, userID).
		Scan(&u.UserID, &u.Username, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

// GetSeller resolves a seller by id.
func (r *SQLiteRepo) GetSeller(sellerID string) (model.Seller, error) {
	var s model.Seller
	err := r.db.QueryRow(`SELECT id, name FROM sellers WHERE id = ?`, sellerID).
		Scan(&s.SellerID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Seller{}, fmt.Errorf("get seller %s: %w", sellerID, auctionerrors.ErrSellerNotFound)
	}
	if err != nil {
		return model.Seller{}, fmt.Errorf("get seller %s: %w", sellerID, err)
	}
	return s, nil
}

// CreateNotification stores an in-app notification.
func (r *SQLiteRepo) CreateNotification(n model.Notification) error {
	_, err := r.db.Exec(
		`INSERT INTO notifications (id, user_id, auction_id, type, message, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.NotificationID, n.UserID, n.AuctionID, n.Type, n.Message, n.Read, ms(n.CreatedAt))
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", n.UserID, err)
	}
	return nil
}

// GetNotificationsForUser returns a user's notifications, newest first.
func (r *SQLiteRepo) GetNotificationsForUser(userID string) ([]model.Notification, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, auction_id, type, message, read, created_at
		 FROM notifications WHERE user_id = ?
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var (
			n         model.Notification
			createdAt int64
		)
		if err := rows.Scan(&n.NotificationID, &n.UserID, &n.AuctionID, &n.Type, &n.Message, &n.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("get notifications for user %s: %w", userID, err)
		}
		n.CreatedAt = fromMS(createdAt)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkAllRead marks all of a user's notifications read, returning the count updated.
func (r *SQLiteRepo) MarkAllRead(userID string) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE notifications SET read = 1 WHERE user_id = ? AND read = 0`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", userID, err)
	}
	return n, nil
}

// CreateReview stores a seller review.
func (r *SQLiteRepo) CreateReview(review model.Review) error {
	_, err := r.db.Exec(
		`INSERT INTO reviews (id, seller_id, reviewer_id, reviewer_name, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ReviewID, review.SellerID, review.ReviewerID, review.ReviewerName,
		review.Rating, review.Comment, ms(review.CreatedAt))
	if err != nil {
		return fmt.Errorf("create review for seller %s: %w", review.SellerID, err)
	}
	return nil
}

// GetReviewsForSeller returns a seller's reviews, newest first.
func (r *SQLiteRepo) GetReviewsForSeller(sellerID string) ([]model.Review, error) {
	rows, err := r.db.Query(
		`SELECT id, seller_id, reviewer_id, reviewer_name, rating, comment, created_at
		 FROM reviews WHERE seller_id = ?
		 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for seller %s: %w", sellerID, err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var (
			rv        model.Review
			createdAt int64
		)
		if err := rows.Scan(&rv.ReviewID, &rv.SellerID, &rv.ReviewerID, &rv.ReviewerName, &rv.Rating, &rv.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("get reviews for seller %s: %w", sellerID, err)
		}
		rv.CreatedAt = fromMS(createdAt)
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// CreateUser inserts a user. Intended for seeding and tests.
func (r *SQLiteRepo) CreateUser(u model.User) error {
	_, err := r.db.Exec(`INSERT INTO users (id, username, email) VALUES (?, ?, ?)`,
		u.UserID, u.Username, u.Email)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.UserID, err)
	}
	return nil
}

// CreateSeller inserts a seller. Intended for seeding and tests.
func (r *SQLiteRepo) CreateSeller(s model.Seller) error {
	_, err := r.db.Exec(`INSERT INTO sellers (id, name) VALUES (?, ?)`, s.SellerID, s.Name)
	if err != nil {
		return fmt.Errorf("create seller %s: %w", s.SellerID, err)
	}
	return nil
}

// CreateAuction inserts an auction. Listing creation happens in the seller
// portal; this exists for seeding and tests.
func (r *SQLiteRepo) CreateAuction(a model.Auction) error {
	images, err := json.Marshal(a.ImageURLs)
	if err != nil {
		return fmt.Errorf("create auction %s: %w", a.AuctionID, err)
	}
	var winner any
	if a.WinnerID != "" {
		winner = a.WinnerID
	}
	_, err = r.db.Exec(
		`INSERT INTO auctions (`+auctionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AuctionID, a.Title, a.Description, a.Category, string(images),
		a.StartingBid, a.CurrentBid, ms(a.EndTime), a.SellerID, winner, a.Status, ms(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("create auction %s: %w", a.AuctionID, err)
	}
	return nil
}

// CountAuctions reports how many auctions exist. Used to decide dev seeding.
func (r *SQLiteRepo) CountAuctions() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM auctions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count auctions: %w", err)
	}
	return n, nil
}
