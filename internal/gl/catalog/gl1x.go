package catalog

func gl1x() []TierSpec {
	return []TierSpec{
		tier("1.0",
			fn("CullFace", tVoid, tEnum),
			fn("FrontFace", tVoid, tEnum),
			fn("Hint", tVoid, tEnum, tEnum),
			fn("LineWidth", tVoid, tFloat),
			fn("PointSize", tVoid, tFloat),
			fn("PolygonMode", tVoid, tEnum, tEnum),
			fn("Scissor", tVoid, tInt, tInt, tSizei, tSizei),
			fn("TexParameterf", tVoid, tEnum, tEnum, tFloat),
			fn("TexParameterfv", tVoid, tEnum, tEnum, tPtr),
			fn("TexParameteri", tVoid, tEnum, tEnum, tInt),
			fn("TexParameteriv", tVoid, tEnum, tEnum, tPtr),
			fn("TexImage1D", tVoid, tEnum, tInt, tInt, tSizei, tInt, tEnum, tEnum, tPtr),
			fn("TexImage2D", tVoid, tEnum, tInt, tInt, tSizei, tSizei, tInt, tEnum, tEnum, tPtr),
			fn("DrawBuffer", tVoid, tEnum),
			fn("Clear", tVoid, tBitfield),
			fn("ClearColor", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("ClearStencil", tVoid, tInt),
			fn("ClearDepth", tVoid, tDouble),
			fn("StencilMask", tVoid, tUint),
			fn("ColorMask", tVoid, tBool, tBool, tBool, tBool),
			fn("DepthMask", tVoid, tBool),
			fn("Disable", tVoid, tEnum),
			fn("Enable", tVoid, tEnum),
			fn("Finish", tVoid),
			fn("Flush", tVoid),
			fn("BlendFunc", tVoid, tEnum, tEnum),
			fn("LogicOp", tVoid, tEnum),
			fn("StencilFunc", tVoid, tEnum, tInt, tUint),
			fn("StencilOp", tVoid, tEnum, tEnum, tEnum),
			fn("DepthFunc", tVoid, tEnum),
			fn("PixelStoref", tVoid, tEnum, tFloat),
			fn("PixelStorei", tVoid, tEnum, tInt),
			fn("ReadBuffer", tVoid, tEnum),
			fn("ReadPixels", tVoid, tInt, tInt, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("GetBooleanv", tVoid, tEnum, tPtr),
			fn("GetDoublev", tVoid, tEnum, tPtr),
			fn("GetError", tEnum),
			fn("GetFloatv", tVoid, tEnum, tPtr),
			fn("GetIntegerv", tVoid, tEnum, tPtr),
			fn("GetString", tPtr, tEnum),
			fn("GetTexImage", tVoid, tEnum, tInt, tEnum, tEnum, tPtr),
			fn("GetTexParameterfv", tVoid, tEnum, tEnum, tPtr),
			fn("GetTexParameteriv", tVoid, tEnum, tEnum, tPtr),
			fn("GetTexLevelParameterfv", tVoid, tEnum, tInt, tEnum, tPtr),
			fn("GetTexLevelParameteriv", tVoid, tEnum, tInt, tEnum, tPtr),
			fn("IsEnabled", tBool, tEnum),
			fn("DepthRange", tVoid, tDouble, tDouble),
			fn("Viewport", tVoid, tInt, tInt, tSizei, tSizei),

			// Compatibility profile.
			fn("NewList", tVoid, tUint, tEnum),
			fn("EndList", tVoid),
			fn("CallList", tVoid, tUint),
			fn("CallLists", tVoid, tSizei, tEnum, tPtr),
			fn("DeleteLists", tVoid, tUint, tSizei),
			fn("GenLists", tUint, tSizei),
			fn("ListBase", tVoid, tUint),
			fn("IsList", tBool, tUint),
			fn("Begin", tVoid, tEnum),
			fn("End", tVoid),
			fn("Vertex2d", tVoid, tDouble, tDouble),
			fn("Vertex2f", tVoid, tFloat, tFloat),
			fn("Vertex2i", tVoid, tInt, tInt),
			fn("Vertex3d", tVoid, tDouble, tDouble, tDouble),
			fn("Vertex3f", tVoid, tFloat, tFloat, tFloat),
			fn("Vertex3fv", tVoid, tPtr),
			fn("Vertex4f", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("Color3d", tVoid, tDouble, tDouble, tDouble),
			fn("Color3f", tVoid, tFloat, tFloat, tFloat),
			fn("Color3ub", tVoid, tUbyte, tUbyte, tUbyte),
			fn("Color4f", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("Color4fv", tVoid, tPtr),
			fn("Color4ub", tVoid, tUbyte, tUbyte, tUbyte, tUbyte),
			fn("Normal3f", tVoid, tFloat, tFloat, tFloat),
			fn("TexCoord2d", tVoid, tDouble, tDouble),
			fn("TexCoord2f", tVoid, tFloat, tFloat),
			fn("RasterPos2i", tVoid, tInt, tInt),
			fn("Rectf", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("Recti", tVoid, tInt, tInt, tInt, tInt),
			fn("EdgeFlag", tVoid, tBool),
			fn("Indexf", tVoid, tFloat),
			fn("Indexi", tVoid, tInt),
			fn("ShadeModel", tVoid, tEnum),
			fn("Lightf", tVoid, tEnum, tEnum, tFloat),
			fn("Lightfv", tVoid, tEnum, tEnum, tPtr),
			fn("LightModelfv", tVoid, tEnum, tPtr),
			fn("GetLightfv", tVoid, tEnum, tEnum, tPtr),
			fn("Materialf", tVoid, tEnum, tEnum, tFloat),
			fn("Materialfv", tVoid, tEnum, tEnum, tPtr),
			fn("GetMaterialfv", tVoid, tEnum, tEnum, tPtr),
			fn("ColorMaterial", tVoid, tEnum, tEnum),
			fn("Fogf", tVoid, tEnum, tFloat),
			fn("Fogfv", tVoid, tEnum, tPtr),
			fn("Fogi", tVoid, tEnum, tInt),
			fn("TexEnvf", tVoid, tEnum, tEnum, tFloat),
			fn("TexEnvfv", tVoid, tEnum, tEnum, tPtr),
			fn("TexEnvi", tVoid, tEnum, tEnum, tInt),
			fn("TexGeni", tVoid, tEnum, tEnum, tInt),
			fn("MatrixMode", tVoid, tEnum),
			fn("LoadIdentity", tVoid),
			fn("LoadMatrixd", tVoid, tPtr),
			fn("LoadMatrixf", tVoid, tPtr),
			fn("MultMatrixf", tVoid, tPtr),
			fn("PushMatrix", tVoid),
			fn("PopMatrix", tVoid),
			fn("Rotated", tVoid, tDouble, tDouble, tDouble, tDouble),
			fn("Rotatef", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("Scalef", tVoid, tFloat, tFloat, tFloat),
			fn("Translated", tVoid, tDouble, tDouble, tDouble),
			fn("Translatef", tVoid, tFloat, tFloat, tFloat),
			fn("Ortho", tVoid, tDouble, tDouble, tDouble, tDouble, tDouble, tDouble),
			fn("Frustum", tVoid, tDouble, tDouble, tDouble, tDouble, tDouble, tDouble),
			fn("PushAttrib", tVoid, tBitfield),
			fn("PopAttrib", tVoid),
			fn("ClipPlane", tVoid, tEnum, tPtr),
			fn("LineStipple", tVoid, tInt, tUshort),
			fn("PolygonStipple", tVoid, tPtr),
			fn("Bitmap", tVoid, tSizei, tSizei, tFloat, tFloat, tFloat, tFloat, tPtr),
			fn("DrawPixels", tVoid, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("CopyPixels", tVoid, tInt, tInt, tSizei, tSizei, tEnum),
			fn("PixelZoom", tVoid, tFloat, tFloat),
			fn("Accum", tVoid, tEnum, tFloat),
			fn("ClearAccum", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("ClearIndex", tVoid, tFloat),
			fn("AlphaFunc", tVoid, tEnum, tFloat),
			fn("RenderMode", tInt, tEnum),
			fn("SelectBuffer", tVoid, tSizei, tPtr),
			fn("FeedbackBuffer", tVoid, tSizei, tEnum, tPtr),
			fn("InitNames", tVoid),
			fn("LoadName", tVoid, tUint),
			fn("PushName", tVoid, tUint),
			fn("PopName", tVoid),
			fn("EvalCoord1f", tVoid, tFloat),
			fn("Map1f", tVoid, tEnum, tFloat, tFloat, tInt, tInt, tPtr),
			fn("MapGrid1f", tVoid, tInt, tFloat, tFloat),
			fn("EvalMesh1", tVoid, tEnum, tInt, tInt),
		),
		tier("1.1",
			fn("DrawArrays", tVoid, tEnum, tInt, tSizei),
			fn("DrawElements", tVoid, tEnum, tSizei, tEnum, tPtr),
			fn("GetPointerv", tVoid, tEnum, tPtr),
			fn("PolygonOffset", tVoid, tFloat, tFloat),
			fn("CopyTexImage1D", tVoid, tEnum, tInt, tEnum, tInt, tInt, tSizei, tInt),
			fn("CopyTexImage2D", tVoid, tEnum, tInt, tEnum, tInt, tInt, tSizei, tSizei, tInt),
			fn("CopyTexSubImage1D", tVoid, tEnum, tInt, tInt, tInt, tInt, tSizei),
			fn("CopyTexSubImage2D", tVoid, tEnum, tInt, tInt, tInt, tInt, tInt, tSizei, tSizei),
			fn("TexSubImage1D", tVoid, tEnum, tInt, tInt, tSizei, tEnum, tEnum, tPtr),
			fn("TexSubImage2D", tVoid, tEnum, tInt, tInt, tInt, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("BindTexture", tVoid, tEnum, tUint),
			fn("DeleteTextures", tVoid, tSizei, tPtr),
			fn("GenTextures", tVoid, tSizei, tPtr),
			fn("IsTexture", tBool, tUint),

			// Compatibility profile.
			fn("ArrayElement", tVoid, tInt),
			fn("ColorPointer", tVoid, tInt, tEnum, tSizei, tPtr),
			fn("DisableClientState", tVoid, tEnum),
			fn("EdgeFlagPointer", tVoid, tSizei, tPtr),
			fn("EnableClientState", tVoid, tEnum),
			fn("IndexPointer", tVoid, tEnum, tSizei, tPtr),
			fn("InterleavedArrays", tVoid, tEnum, tSizei, tPtr),
			fn("NormalPointer", tVoid, tEnum, tSizei, tPtr),
			fn("TexCoordPointer", tVoid, tInt, tEnum, tSizei, tPtr),
			fn("VertexPointer", tVoid, tInt, tEnum, tSizei, tPtr),
			fn("AreTexturesResident", tBool, tSizei, tPtr, tPtr),
			fn("PrioritizeTextures", tVoid, tSizei, tPtr, tPtr),
			fn("Indexub", tVoid, tUbyte),
			fn("PushClientAttrib", tVoid, tBitfield),
			fn("PopClientAttrib", tVoid),
		),
		tier("1.2",
			fn("DrawRangeElements", tVoid, tEnum, tUint, tUint, tSizei, tEnum, tPtr),
			fn("TexImage3D", tVoid, tEnum, tInt, tInt, tSizei, tSizei, tSizei, tInt, tEnum, tEnum, tPtr),
			fn("TexSubImage3D", tVoid, tEnum, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("CopyTexSubImage3D", tVoid, tEnum, tInt, tInt, tInt, tInt, tInt, tInt, tSizei, tSizei),
		),
		tier("1.3",
			fn("ActiveTexture", tVoid, tEnum),
			fn("SampleCoverage", tVoid, tFloat, tBool),
			fn("CompressedTexImage3D", tVoid, tEnum, tInt, tEnum, tSizei, tSizei, tSizei, tInt, tSizei, tPtr),
			fn("CompressedTexImage2D", tVoid, tEnum, tInt, tEnum, tSizei, tSizei, tInt, tSizei, tPtr),
			fn("CompressedTexImage1D", tVoid, tEnum, tInt, tEnum, tSizei, tInt, tSizei, tPtr),
			fn("CompressedTexSubImage3D", tVoid, tEnum, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei, tEnum, tSizei, tPtr),
			fn("CompressedTexSubImage2D", tVoid, tEnum, tInt, tInt, tInt, tSizei, tSizei, tEnum, tSizei, tPtr),
			fn("CompressedTexSubImage1D", tVoid, tEnum, tInt, tInt, tSizei, tEnum, tSizei, tPtr),
			fn("GetCompressedTexImage", tVoid, tEnum, tInt, tPtr),

			// Compatibility profile.
			fn("ClientActiveTexture", tVoid, tEnum),
			fn("MultiTexCoord2f", tVoid, tEnum, tFloat, tFloat),
			fn("MultiTexCoord4f", tVoid, tEnum, tFloat, tFloat, tFloat, tFloat),
			fn("LoadTransposeMatrixf", tVoid, tPtr),
			fn("MultTransposeMatrixf", tVoid, tPtr),
		),
		tier("1.4",
			fn("BlendFuncSeparate", tVoid, tEnum, tEnum, tEnum, tEnum),
			fn("MultiDrawArrays", tVoid, tEnum, tPtr, tPtr, tSizei),
			fn("MultiDrawElements", tVoid, tEnum, tPtr, tEnum, tPtr, tSizei),
			fn("PointParameterf", tVoid, tEnum, tFloat),
			fn("PointParameterfv", tVoid, tEnum, tPtr),
			fn("PointParameteri", tVoid, tEnum, tInt),
			fn("PointParameteriv", tVoid, tEnum, tPtr),
			fn("BlendColor", tVoid, tFloat, tFloat, tFloat, tFloat),
			fn("BlendEquation", tVoid, tEnum),

			// Compatibility profile.
			fn("FogCoordf", tVoid, tFloat),
			fn("FogCoordPointer", tVoid, tEnum, tSizei, tPtr),
			fn("SecondaryColor3f", tVoid, tFloat, tFloat, tFloat),
			fn("SecondaryColorPointer", tVoid, tInt, tEnum, tSizei, tPtr),
			fn("WindowPos2f", tVoid, tFloat, tFloat),
			fn("WindowPos3f", tVoid, tFloat, tFloat, tFloat),
		),
		tier("1.5",
			fn("GenQueries", tVoid, tSizei, tPtr),
			fn("DeleteQueries", tVoid, tSizei, tPtr),
			fn("IsQuery", tBool, tUint),
			fn("BeginQuery", tVoid, tEnum, tUint),
			fn("EndQuery", tVoid, tEnum),
			fn("GetQueryiv", tVoid, tEnum, tEnum, tPtr),
			fn("GetQueryObjectiv", tVoid, tUint, tEnum, tPtr),
			fn("GetQueryObjectuiv", tVoid, tUint, tEnum, tPtr),
			fn("BindBuffer", tVoid, tEnum, tUint),
			fn("DeleteBuffers", tVoid, tSizei, tPtr),
			fn("GenBuffers", tVoid, tSizei, tPtr),
			fn("IsBuffer", tBool, tUint),
			fn("BufferData", tVoid, tEnum, tSizeiptr, tPtr, tEnum),
			fn("BufferSubData", tVoid, tEnum, tIntptr, tSizeiptr, tPtr),
			fn("GetBufferSubData", tVoid, tEnum, tIntptr, tSizeiptr, tPtr),
			fn("MapBuffer", tPtr, tEnum, tEnum),
			fn("UnmapBuffer", tBool, tEnum),
			fn("GetBufferParameteriv", tVoid, tEnum, tEnum, tPtr),
			fn("GetBufferPointerv", tVoid, tEnum, tEnum, tPtr),
		),
	}
}
