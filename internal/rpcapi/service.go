package rpcapi

import (
	"context"

	"google.golang.org/grpc"
)

// serviceName identifies the service on the wire, even though there is no
// .proto file here: it is the string clients and servers agree on out of
// band.
const serviceName = "zkp_auth.Auth"

func _Auth_GetAuthenticationParameters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*Facade).GetAuthenticationParameters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("GetAuthenticationParameters")}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*Facade).GetAuthenticationParameters(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*Facade).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("Register")}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*Facade).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_CreateAuthenticationChallenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*Facade).CreateAuthenticationChallenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("CreateAuthenticationChallenge")}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*Facade).CreateAuthenticationChallenge(ctx, req.(*ChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_VerifyAuthentication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnswerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*Facade).VerifyAuthentication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("VerifyAuthentication")}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*Facade).VerifyAuthentication(ctx, req.(*AnswerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// serviceDesc is a hand-maintained grpc.ServiceDesc: one MethodDesc per
// exported RPC, each wired to a Handler above with the exact shape
// grpc.Server expects.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAuthenticationParameters", Handler: _Auth_GetAuthenticationParameters_Handler},
		{MethodName: "Register", Handler: _Auth_Register_Handler},
		{MethodName: "CreateAuthenticationChallenge", Handler: _Auth_CreateAuthenticationChallenge_Handler},
		{MethodName: "VerifyAuthentication", Handler: _Auth_VerifyAuthentication_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "zkp_auth.proto",
}

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}
