package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	pb "github.com/dmitrijs2005/plaintheory/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.PlainTheoryClient
	log         logging.Logger
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the session's access token and applies
// the request timeout. On an expired access token it refreshes the pair once,
// rotates the session and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	sess, ok := session.FromContext(ctx)
	if !ok {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	tokens, err := sess.Tokens()
	if err != nil {
		return status.Error(codes.Unauthenticated, err.Error())
	}

	err = invoker(withAccessToken(ctx, tokens.Access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if tokens.Refresh == "" {
		return err
	}

	// the refresh call itself must not carry the session
	resp, rerr := s.client.RefreshToken(session.WithSession(ctx, nil), &pb.RefreshTokenRequest{RefreshToken: tokens.Refresh})
	if rerr != nil {
		s.log.Info(ctx, "token refresh failed", "error", rerr)
		if st, ok := status.FromError(rerr); ok && st.Code() == codes.Unauthenticated {
			sess.Invalidate()
		}
		return rerr
	}

	if err := sess.Rotate(resp.AccessToken, resp.RefreshToken); err != nil {
		return status.Error(codes.Unauthenticated, err.Error())
	}
	s.log.Debug(ctx, "tokens refreshed", "method", method)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; the first RPC establishes the
// connection.
func NewGRPCClient(endpointURL string, timeout time.Duration, log logging.Logger) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, log: log.With("module", "grpcclient")}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPlainTheoryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// auth

func (s *GRPCClient) SignUp(ctx context.Context, email, password string) (bool, error) {
	resp, err := s.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return false, mapError(err)
	}
	return resp.Confirmed, nil
}

func (s *GRPCClient) ConfirmEmail(ctx context.Context, token string) error {
	_, err := s.client.ConfirmEmail(ctx, &pb.ConfirmEmailRequest{Token: token})
	return mapError(err)
}

// SignIn returns a fresh session holding the issued token pair.
func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*session.Session, *models.User, error) {
	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return session.New(resp.AccessToken, resp.RefreshToken), userFromPB(resp.User), nil
}

// SignOut revokes the session's refresh token and invalidates the session
// even when the server call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil
	}
	tokens, err := sess.Tokens()
	if err != nil {
		return nil
	}
	defer sess.Invalidate()

	_, err = s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: tokens.Refresh})
	return mapError(err)
}

func (s *GRPCClient) CurrentUser(ctx context.Context) (*models.User, error) {
	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return userFromPB(resp.User), nil
}

// notes

func (s *GRPCClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	notes := make([]models.Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		if n != nil {
			notes = append(notes, noteFromPB(n))
		}
	}
	return notes, nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	resp, err := s.client.CreateNote(ctx, &pb.CreateNoteRequest{Title: title, Content: content})
	if err != nil {
		return nil, mapError(err)
	}
	return notePtr(resp.Note)
}

func (s *GRPCClient) GetNote(ctx context.Context, id string) (*models.Note, error) {
	resp, err := s.client.GetNote(ctx, &pb.GetNoteRequest{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	return notePtr(resp.Note)
}

func (s *GRPCClient) UpdateNote(ctx context.Context, id, title, content string) (*models.Note, error) {
	resp, err := s.client.UpdateNote(ctx, &pb.UpdateNoteRequest{ID: id, Title: title, Content: content})
	if err != nil {
		return nil, mapError(err)
	}
	return notePtr(resp.Note)
}

func (s *GRPCClient) DeleteNote(ctx context.Context, id string) error {
	_, err := s.client.DeleteNote(ctx, &pb.DeleteNoteRequest{ID: id})
	return mapError(err)
}

// documents

func (s *GRPCClient) ListDocuments(ctx context.Context, noteID string) ([]models.Document, error) {
	resp, err := s.client.ListDocuments(ctx, &pb.ListDocumentsRequest{NoteID: noteID})
	if err != nil {
		return nil, mapError(err)
	}
	docs := make([]models.Document, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		if d != nil {
			docs = append(docs, documentFromPB(d))
		}
	}
	return docs, nil
}

func (s *GRPCClient) CreateDocument(ctx context.Context, d models.Document) (*models.Document, error) {
	resp, err := s.client.CreateDocument(ctx, &pb.CreateDocumentRequest{
		NoteID:     d.NoteID,
		FileName:   d.FileName,
		FileURL:    d.FileURL,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		StorageKey: d.StorageKey,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if resp.Document == nil {
		return nil, ErrEmptyResponse
	}
	doc := documentFromPB(resp.Document)
	return &doc, nil
}

func (s *GRPCClient) DeleteDocument(ctx context.Context, id string) error {
	_, err := s.client.DeleteDocument(ctx, &pb.DeleteDocumentRequest{ID: id})
	return mapError(err)
}

func (s *GRPCClient) DownloadURL(ctx context.Context, id string) (string, error) {
	resp, err := s.client.GetDownloadURL(ctx, &pb.GetDownloadURLRequest{ID: id})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}

// blob store

func (s *GRPCClient) CreateUploadURL(ctx context.Context, key, contentType string, size int64) (string, error) {
	resp, err := s.client.CreateUploadURL(ctx, &pb.CreateUploadURLRequest{Key: key, ContentType: contentType, Size: size})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}

func (s *GRPCClient) PublicURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.GetPublicURL(ctx, &pb.GetPublicURLRequest{Key: key})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}

func (s *GRPCClient) RemoveObject(ctx context.Context, key string) error {
	_, err := s.client.RemoveObject(ctx, &pb.RemoveObjectRequest{Key: key})
	return mapError(err)
}

func userFromPB(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{ID: u.ID, Email: u.Email, ConfirmedAt: u.ConfirmedAt, CreatedAt: u.CreatedAt}
}

func noteFromPB(n *pb.Note) models.Note {
	return models.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func notePtr(n *pb.Note) (*models.Note, error) {
	if n == nil {
		return nil, ErrEmptyResponse
	}
	note := noteFromPB(n)
	return &note, nil
}

func documentFromPB(d *pb.Document) models.Document {
	return models.Document{
		ID:         d.ID,
		NoteID:     d.NoteID,
		OwnerID:    d.OwnerID,
		FileName:   d.FileName,
		FileURL:    d.FileURL,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		StorageKey: d.StorageKey,
		CreatedAt:  d.CreatedAt,
	}
}
