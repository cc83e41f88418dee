package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/plaintheory/internal/proto"
	"github.com/dmitrijs2005/plaintheory/internal/server/auth"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func callerID(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func userToPB(u *models.User) *pb.User {
	return &pb.User{ID: u.ID, Email: u.Email, ConfirmedAt: u.ConfirmedAt, CreatedAt: u.CreatedAt}
}

func noteToPB(n *models.Note) *pb.Note {
	return &pb.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func documentToPB(d *models.Document) *pb.Document {
	return &pb.Document{
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

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	u, err := s.users.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.SignUpResponse{UserID: u.ID, Confirmed: u.Confirmed()}, nil
}

func (s *GRPCServer) ConfirmEmail(ctx context.Context, req *pb.ConfirmEmailRequest) (*pb.ConfirmEmailResponse, error) {
	if _, err := s.users.ConfirmEmail(ctx, req.Token); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ConfirmEmailResponse{}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	tokens, u, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SignInResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         userToPB(u),
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.SignOut(ctx, uid, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SignOutResponse{}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetUserResponse{User: userToPB(u)}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.List(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]*pb.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteToPB(n))
	}
	return &pb.ListNotesResponse{Notes: out}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.CreateNoteResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.notes.Create(ctx, uid, req.Title, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateNoteResponse{Note: noteToPB(n)}, nil
}

func (s *GRPCServer) GetNote(ctx context.Context, req *pb.GetNoteRequest) (*pb.GetNoteResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.notes.Get(ctx, uid, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetNoteResponse{Note: noteToPB(n)}, nil
}

func (s *GRPCServer) UpdateNote(ctx context.Context, req *pb.UpdateNoteRequest) (*pb.UpdateNoteResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.notes.Update(ctx, uid, req.ID, req.Title, req.Content)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateNoteResponse{Note: noteToPB(n)}, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *pb.DeleteNoteRequest) (*pb.DeleteNoteResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.notes.Delete(ctx, uid, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteNoteResponse{}, nil
}

func (s *GRPCServer) ListDocuments(ctx context.Context, req *pb.ListDocumentsRequest) (*pb.ListDocumentsResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.List(ctx, uid, req.NoteID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]*pb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentToPB(d))
	}
	return &pb.ListDocumentsResponse{Documents: out}, nil
}

func (s *GRPCServer) CreateDocument(ctx context.Context, req *pb.CreateDocumentRequest) (*pb.CreateDocumentResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.documents.Create(ctx, uid, &models.Document{
		NoteID:     req.NoteID,
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		FileType:   req.FileType,
		FileSize:   req.FileSize,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateDocumentResponse{Document: documentToPB(d)}, nil
}

func (s *GRPCServer) DeleteDocument(ctx context.Context, req *pb.DeleteDocumentRequest) (*pb.DeleteDocumentResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.documents.Delete(ctx, uid, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteDocumentResponse{}, nil
}

func (s *GRPCServer) GetDownloadURL(ctx context.Context, req *pb.GetDownloadURLRequest) (*pb.GetDownloadURLResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.documents.DownloadURL(ctx, uid, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetDownloadURLResponse{URL: url}, nil
}

func (s *GRPCServer) CreateUploadURL(ctx context.Context, req *pb.CreateUploadURLRequest) (*pb.CreateUploadURLResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	url, expires, err := s.storage.CreateUploadURL(ctx, uid, req.Key, req.ContentType, req.Size)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateUploadURLResponse{URL: url, ExpiresAt: expires}, nil
}

func (s *GRPCServer) GetPublicURL(ctx context.Context, req *pb.GetPublicURLRequest) (*pb.GetPublicURLResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	return &pb.GetPublicURLResponse{URL: s.storage.PublicURL(req.Key)}, nil
}

func (s *GRPCServer) RemoveObject(ctx context.Context, req *pb.RemoveObjectRequest) (*pb.RemoveObjectResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Remove(ctx, uid, req.Key); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RemoveObjectResponse{}, nil
}
