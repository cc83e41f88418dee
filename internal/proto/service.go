package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "plaintheory.v1.PlainTheory"

// Method names, usable with FullMethod.
const (
	MethodSignUp          = "SignUp"
	MethodConfirmEmail    = "ConfirmEmail"
	MethodSignIn          = "SignIn"
	MethodSignOut         = "SignOut"
	MethodRefreshToken    = "RefreshToken"
	MethodGetUser         = "GetUser"
	MethodListNotes       = "ListNotes"
	MethodCreateNote      = "CreateNote"
	MethodGetNote         = "GetNote"
	MethodUpdateNote      = "UpdateNote"
	MethodDeleteNote      = "DeleteNote"
	MethodListDocuments   = "ListDocuments"
	MethodCreateDocument  = "CreateDocument"
	MethodDeleteDocument  = "DeleteDocument"
	MethodGetDownloadURL  = "GetDownloadURL"
	MethodCreateUploadURL = "CreateUploadURL"
	MethodGetPublicURL    = "GetPublicURL"
	MethodRemoveObject    = "RemoveObject"
)

// FullMethod returns the "/service/method" path gRPC uses for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PlainTheoryServer is implemented by the backend.
type PlainTheoryServer interface {
	SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error)
	ConfirmEmail(context.Context, *ConfirmEmailRequest) (*ConfirmEmailResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error)
	GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	GetDownloadURL(context.Context, *GetDownloadURLRequest) (*GetDownloadURLResponse, error)
	CreateUploadURL(context.Context, *CreateUploadURLRequest) (*CreateUploadURLResponse, error)
	GetPublicURL(context.Context, *GetPublicURLRequest) (*GetPublicURLResponse, error)
	RemoveObject(context.Context, *RemoveObjectRequest) (*RemoveObjectResponse, error)
}

// UnimplementedPlainTheoryServer answers every method with codes.Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedPlainTheoryServer struct{}

func (UnimplementedPlainTheoryServer) SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
}
func (UnimplementedPlainTheoryServer) ConfirmEmail(context.Context, *ConfirmEmailRequest) (*ConfirmEmailResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmEmail not implemented")
}
func (UnimplementedPlainTheoryServer) SignIn(context.Context, *SignInRequest) (*SignInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignIn not implemented")
}
func (UnimplementedPlainTheoryServer) SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignOut not implemented")
}
func (UnimplementedPlainTheoryServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedPlainTheoryServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedPlainTheoryServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotes not implemented")
}
func (UnimplementedPlainTheoryServer) CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateNote not implemented")
}
func (UnimplementedPlainTheoryServer) GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNote not implemented")
}
func (UnimplementedPlainTheoryServer) UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateNote not implemented")
}
func (UnimplementedPlainTheoryServer) DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteNote not implemented")
}
func (UnimplementedPlainTheoryServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedPlainTheoryServer) CreateDocument(context.Context, *CreateDocumentRequest) (*CreateDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDocument not implemented")
}
func (UnimplementedPlainTheoryServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedPlainTheoryServer) GetDownloadURL(context.Context, *GetDownloadURLRequest) (*GetDownloadURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDownloadURL not implemented")
}
func (UnimplementedPlainTheoryServer) CreateUploadURL(context.Context, *CreateUploadURLRequest) (*CreateUploadURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUploadURL not implemented")
}
func (UnimplementedPlainTheoryServer) GetPublicURL(context.Context, *GetPublicURLRequest) (*GetPublicURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPublicURL not implemented")
}
func (UnimplementedPlainTheoryServer) RemoveObject(context.Context, *RemoveObjectRequest) (*RemoveObjectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveObject not implemented")
}

func unary[Req, Resp any](method string, call func(PlainTheoryServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PlainTheoryServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(PlainTheoryServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the PlainTheory service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlainTheoryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodSignUp, PlainTheoryServer.SignUp),
		unary(MethodConfirmEmail, PlainTheoryServer.ConfirmEmail),
		unary(MethodSignIn, PlainTheoryServer.SignIn),
		unary(MethodSignOut, PlainTheoryServer.SignOut),
		unary(MethodRefreshToken, PlainTheoryServer.RefreshToken),
		unary(MethodGetUser, PlainTheoryServer.GetUser),
		unary(MethodListNotes, PlainTheoryServer.ListNotes),
		unary(MethodCreateNote, PlainTheoryServer.CreateNote),
		unary(MethodGetNote, PlainTheoryServer.GetNote),
		unary(MethodUpdateNote, PlainTheoryServer.UpdateNote),
		unary(MethodDeleteNote, PlainTheoryServer.DeleteNote),
		unary(MethodListDocuments, PlainTheoryServer.ListDocuments),
		unary(MethodCreateDocument, PlainTheoryServer.CreateDocument),
		unary(MethodDeleteDocument, PlainTheoryServer.DeleteDocument),
		unary(MethodGetDownloadURL, PlainTheoryServer.GetDownloadURL),
		unary(MethodCreateUploadURL, PlainTheoryServer.CreateUploadURL),
		unary(MethodGetPublicURL, PlainTheoryServer.GetPublicURL),
		unary(MethodRemoveObject, PlainTheoryServer.RemoveObject),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "plaintheory/v1/plaintheory.json",
}

// RegisterPlainTheoryServer registers srv on s.
func RegisterPlainTheoryServer(s grpc.ServiceRegistrar, srv PlainTheoryServer) {
	s.RegisterService(&ServiceDesc, srv)
}
