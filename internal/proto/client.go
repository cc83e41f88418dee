package proto

import (
	"context"

	"google.golang.org/grpc"
)

// PlainTheoryClient is the client API for the PlainTheory service.
type PlainTheoryClient interface {
	SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error)
	ConfirmEmail(ctx context.Context, in *ConfirmEmailRequest, opts ...grpc.CallOption) (*ConfirmEmailResponse, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error)
	SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error)
	GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error)
	UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error)
	DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error)
	DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error)
	GetDownloadURL(ctx context.Context, in *GetDownloadURLRequest, opts ...grpc.CallOption) (*GetDownloadURLResponse, error)
	CreateUploadURL(ctx context.Context, in *CreateUploadURLRequest, opts ...grpc.CallOption) (*CreateUploadURLResponse, error)
	GetPublicURL(ctx context.Context, in *GetPublicURLRequest, opts ...grpc.CallOption) (*GetPublicURLResponse, error)
	RemoveObject(ctx context.Context, in *RemoveObjectRequest, opts ...grpc.CallOption) (*RemoveObjectResponse, error)
}

type plainTheoryClient struct {
	cc grpc.ClientConnInterface
}

// NewPlainTheoryClient returns a client stub that always selects the JSON codec.
func NewPlainTheoryClient(cc grpc.ClientConnInterface) PlainTheoryClient {
	return &plainTheoryClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plainTheoryClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error) {
	return invoke[SignUpResponse](ctx, c.cc, MethodSignUp, in, opts)
}

func (c *plainTheoryClient) ConfirmEmail(ctx context.Context, in *ConfirmEmailRequest, opts ...grpc.CallOption) (*ConfirmEmailResponse, error) {
	return invoke[ConfirmEmailResponse](ctx, c.cc, MethodConfirmEmail, in, opts)
}

func (c *plainTheoryClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, MethodSignIn, in, opts)
}

func (c *plainTheoryClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error) {
	return invoke[SignOutResponse](ctx, c.cc, MethodSignOut, in, opts)
}

func (c *plainTheoryClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *plainTheoryClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, MethodGetUser, in, opts)
}

func (c *plainTheoryClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, MethodListNotes, in, opts)
}

func (c *plainTheoryClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error) {
	return invoke[CreateNoteResponse](ctx, c.cc, MethodCreateNote, in, opts)
}

func (c *plainTheoryClient) GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error) {
	return invoke[GetNoteResponse](ctx, c.cc, MethodGetNote, in, opts)
}

func (c *plainTheoryClient) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error) {
	return invoke[UpdateNoteResponse](ctx, c.cc, MethodUpdateNote, in, opts)
}

func (c *plainTheoryClient) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error) {
	return invoke[DeleteNoteResponse](ctx, c.cc, MethodDeleteNote, in, opts)
}

func (c *plainTheoryClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	return invoke[ListDocumentsResponse](ctx, c.cc, MethodListDocuments, in, opts)
}

func (c *plainTheoryClient) CreateDocument(ctx context.Context, in *CreateDocumentRequest, opts ...grpc.CallOption) (*CreateDocumentResponse, error) {
	return invoke[CreateDocumentResponse](ctx, c.cc, MethodCreateDocument, in, opts)
}

func (c *plainTheoryClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error) {
	return invoke[DeleteDocumentResponse](ctx, c.cc, MethodDeleteDocument, in, opts)
}

func (c *plainTheoryClient) GetDownloadURL(ctx context.Context, in *GetDownloadURLRequest, opts ...grpc.CallOption) (*GetDownloadURLResponse, error) {
	return invoke[GetDownloadURLResponse](ctx, c.cc, MethodGetDownloadURL, in, opts)
}

func (c *plainTheoryClient) CreateUploadURL(ctx context.Context, in *CreateUploadURLRequest, opts ...grpc.CallOption) (*CreateUploadURLResponse, error) {
	return invoke[CreateUploadURLResponse](ctx, c.cc, MethodCreateUploadURL, in, opts)
}

func (c *plainTheoryClient) GetPublicURL(ctx context.Context, in *GetPublicURLRequest, opts ...grpc.CallOption) (*GetPublicURLResponse, error) {
	return invoke[GetPublicURLResponse](ctx, c.cc, MethodGetPublicURL, in, opts)
}

func (c *plainTheoryClient) RemoveObject(ctx context.Context, in *RemoveObjectRequest, opts ...grpc.CallOption) (*RemoveObjectResponse, error) {
	return invoke[RemoveObjectResponse](ctx, c.cc, MethodRemoveObject, in, opts)
}
