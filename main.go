package main

import (
	"context"
	"log"
	"os"

	"github.com/ankit-singh26/Whiteboard-Project/global"
	"github.com/ankit-singh26/Whiteboard-Project/logger"
	mid "github.com/ankit-singh26/Whiteboard-Project/middleware"
	"github.com/ankit-singh26/Whiteboard-Project/module/room"
	"github.com/ankit-singh26/Whiteboard-Project/module/user"
	"github.com/ankit-singh26/Whiteboard-Project/service/board"
	"github.com/ankit-singh26/Whiteboard-Project/service/board/handlers"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	if err := global.ConfigAll(ctx); err != nil {
		log.Fatalf("startup config failed: %v", err)
	}

	relay := board.NewRelay(board.NewRegistry())
	relay.Disp().Register(handlers.NewJoinHandler())
	relay.Disp().Register(handlers.NewDrawHandler())
	relay.Disp().Register(handlers.NewChatHandler())

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mid.CORS())

	r.GET("/ws", relay.HandleWS)

	mid.POST(r, "/api/auth/signup", user.HandlerSignup, mid.RouteOpt{IsAuth: false})
	mid.POST(r, "/api/auth/login", user.HandlerLogin, mid.RouteOpt{IsAuth: false})
	mid.POST(r, "/api/rooms/create", room.HandlerCreate, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/rooms/join", room.HandlerJoin, mid.RouteOpt{IsAuth: true})
	mid.GET(r, "/api/rooms/presence", room.HandlerPresence, mid.RouteOpt{IsAuth: true})

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":5000"
	}
	logger.Infof("[HTTP] Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
