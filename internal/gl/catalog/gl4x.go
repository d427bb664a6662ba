package catalog

func gl4x() []TierSpec {
	return []TierSpec{
		tier("4.0",
			fn("MinSampleShading", tVoid, tFloat),
			fn("BlendEquationi", tVoid, tUint, tEnum),
			fn("BlendEquationSeparatei", tVoid, tUint, tEnum, tEnum),
			fn("BlendFunci", tVoid, tUint, tEnum, tEnum),
			fn("BlendFuncSeparatei", tVoid, tUint, tEnum, tEnum, tEnum, tEnum),
			fn("DrawArraysIndirect", tVoid, tEnum, tPtr),
			fn("DrawElementsIndirect", tVoid, tEnum, tEnum, tPtr),
			fn("Uniform1d", tVoid, tInt, tDouble),
			fn("Uniform2d", tVoid, tInt, tDouble, tDouble),
			fn("Uniform3d", tVoid, tInt, tDouble, tDouble, tDouble),
			fn("Uniform4d", tVoid, tInt, tDouble, tDouble, tDouble, tDouble),
			fn("Uniform1dv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform4dv", tVoid, tInt, tSizei, tPtr),
			fn("UniformMatrix4dv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("GetUniformdv", tVoid, tUint, tInt, tPtr),
			fn("GetSubroutineUniformLocation", tInt, tUint, tEnum, tStr),
			fn("GetSubroutineIndex", tUint, tUint, tEnum, tStr),
			fn("GetActiveSubroutineUniformiv", tVoid, tUint, tEnum, tUint, tEnum, tPtr),
			fn("GetActiveSubroutineUniformName", tVoid, tUint, tEnum, tUint, tSizei, tPtr, tPtr),
			fn("GetActiveSubroutineName", tVoid, tUint, tEnum, tUint, tSizei, tPtr, tPtr),
			fn("UniformSubroutinesuiv", tVoid, tEnum, tSizei, tPtr),
			fn("GetUniformSubroutineuiv", tVoid, tEnum, tInt, tPtr),
			fn("GetProgramStageiv", tVoid, tUint, tEnum, tEnum, tPtr),
			fn("PatchParameteri", tVoid, tEnum, tInt),
			fn("PatchParameterfv", tVoid, tEnum, tPtr),
			fn("BindTransformFeedback", tVoid, tEnum, tUint),
			fn("DeleteTransformFeedbacks", tVoid, tSizei, tPtr),
			fn("GenTransformFeedbacks", tVoid, tSizei, tPtr),
			fn("IsTransformFeedback", tBool, tUint),
			fn("PauseTransformFeedback", tVoid),
			fn("ResumeTransformFeedback", tVoid),
			fn("DrawTransformFeedback", tVoid, tEnum, tUint),
			fn("DrawTransformFeedbackStream", tVoid, tEnum, tUint, tUint),
			fn("BeginQueryIndexed", tVoid, tEnum, tUint, tUint),
			fn("EndQueryIndexed", tVoid, tEnum, tUint),
			fn("GetQueryIndexediv", tVoid, tEnum, tUint, tEnum, tPtr),
		),
		tier("4.1",
			fn("ReleaseShaderCompiler", tVoid),
			fn("ShaderBinary", tVoid, tSizei, tPtr, tEnum, tPtr, tSizei),
			fn("GetShaderPrecisionFormat", tVoid, tEnum, tEnum, tPtr, tPtr),
			fn("DepthRangef", tVoid, tFloat, tFloat),
			fn("ClearDepthf", tVoid, tFloat),
			fn("GetProgramBinary", tVoid, tUint, tSizei, tPtr, tPtr, tPtr),
			fn("ProgramBinary", tVoid, tUint, tEnum, tPtr, tSizei),
			fn("ProgramParameteri", tVoid, tUint, tEnum, tInt),
			fn("UseProgramStages", tVoid, tUint, tBitfield, tUint),
			fn("ActiveShaderProgram", tVoid, tUint, tUint),
			fn("CreateShaderProgramv", tUint, tEnum, tSizei, tPtr),
			fn("BindProgramPipeline", tVoid, tUint),
			fn("DeleteProgramPipelines", tVoid, tSizei, tPtr),
			fn("GenProgramPipelines", tVoid, tSizei, tPtr),
			fn("IsProgramPipeline", tBool, tUint),
			fn("GetProgramPipelineiv", tVoid, tUint, tEnum, tPtr),
			fn("ProgramUniform1i", tVoid, tUint, tInt, tInt),
			fn("ProgramUniform1ui", tVoid, tUint, tInt, tUint),
			fn("ProgramUniform1f", tVoid, tUint, tInt, tFloat),
			fn("ProgramUniform2f", tVoid, tUint, tInt, tFloat, tFloat),
			fn("ProgramUniform3f", tVoid, tUint, tInt, tFloat, tFloat, tFloat),
			fn("ProgramUniform4f", tVoid, tUint, tInt, tFloat, tFloat, tFloat, tFloat),
			fn("ProgramUniform1fv", tVoid, tUint, tInt, tSizei, tPtr),
			fn("ProgramUniform4fv", tVoid, tUint, tInt, tSizei, tPtr),
			fn("ProgramUniformMatrix4fv", tVoid, tUint, tInt, tSizei, tBool, tPtr),
			fn("ValidateProgramPipeline", tVoid, tUint),
			fn("GetProgramPipelineInfoLog", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("VertexAttribL1d", tVoid, tUint, tDouble),
			fn("VertexAttribL4d", tVoid, tUint, tDouble, tDouble, tDouble, tDouble),
			fn("VertexAttribLPointer", tVoid, tUint, tInt, tEnum, tSizei, tPtr),
			fn("GetVertexAttribLdv", tVoid, tUint, tEnum, tPtr),
			fn("ViewportArrayv", tVoid, tUint, tSizei, tPtr),
			fn("ViewportIndexedf", tVoid, tUint, tFloat, tFloat, tFloat, tFloat),
			fn("ScissorArrayv", tVoid, tUint, tSizei, tPtr),
			fn("ScissorIndexed", tVoid, tUint, tInt, tInt, tSizei, tSizei),
			fn("DepthRangeArrayv", tVoid, tUint, tSizei, tPtr),
			fn("DepthRangeIndexed", tVoid, tUint, tDouble, tDouble),
			fn("GetFloati_v", tVoid, tEnum, tUint, tPtr),
			fn("GetDoublei_v", tVoid, tEnum, tUint, tPtr),
		),
		tier("4.2",
			fn("DrawArraysInstancedBaseInstance", tVoid, tEnum, tInt, tSizei, tSizei, tUint),
			fn("DrawElementsInstancedBaseInstance", tVoid, tEnum, tSizei, tEnum, tPtr, tSizei, tUint),
			fn("DrawElementsInstancedBaseVertexBaseInstance", tVoid, tEnum, tSizei, tEnum, tPtr, tSizei, tInt, tUint),
			fn("GetInternalformativ", tVoid, tEnum, tEnum, tEnum, tSizei, tPtr),
			fn("GetActiveAtomicCounterBufferiv", tVoid, tUint, tUint, tEnum, tPtr),
			fn("BindImageTexture", tVoid, tUint, tUint, tInt, tBool, tInt, tEnum, tEnum),
			fn("MemoryBarrier", tVoid, tBitfield),
			fn("TexStorage1D", tVoid, tEnum, tSizei, tEnum, tSizei),
			fn("TexStorage2D", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei),
			fn("TexStorage3D", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei, tSizei),
			fn("DrawTransformFeedbackInstanced", tVoid, tEnum, tUint, tSizei),
			fn("DrawTransformFeedbackStreamInstanced", tVoid, tEnum, tUint, tUint, tSizei),
		),
		tier("4.3",
			fn("ClearBufferData", tVoid, tEnum, tEnum, tEnum, tEnum, tPtr),
			fn("ClearBufferSubData", tVoid, tEnum, tEnum, tIntptr, tSizeiptr, tEnum, tEnum, tPtr),
			fn("DispatchCompute", tVoid, tUint, tUint, tUint),
			fn("DispatchComputeIndirect", tVoid, tIntptr),
			fn("CopyImageSubData", tVoid, tUint, tEnum, tInt, tInt, tInt, tInt, tUint, tEnum, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei),
			fn("FramebufferParameteri", tVoid, tEnum, tEnum, tInt),
			fn("GetFramebufferParameteriv", tVoid, tEnum, tEnum, tPtr),
			fn("GetInternalformati64v", tVoid, tEnum, tEnum, tEnum, tSizei, tPtr),
			fn("InvalidateTexSubImage", tVoid, tUint, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei),
			fn("InvalidateTexImage", tVoid, tUint, tInt),
			fn("InvalidateBufferSubData", tVoid, tUint, tIntptr, tSizeiptr),
			fn("InvalidateBufferData", tVoid, tUint),
			fn("InvalidateFramebuffer", tVoid, tEnum, tSizei, tPtr),
			fn("InvalidateSubFramebuffer", tVoid, tEnum, tSizei, tPtr, tInt, tInt, tSizei, tSizei),
			fn("MultiDrawArraysIndirect", tVoid, tEnum, tPtr, tSizei, tSizei),
			fn("MultiDrawElementsIndirect", tVoid, tEnum, tEnum, tPtr, tSizei, tSizei),
			fn("GetProgramInterfaceiv", tVoid, tUint, tEnum, tEnum, tPtr),
			fn("GetProgramResourceIndex", tUint, tUint, tEnum, tStr),
			fn("GetProgramResourceName", tVoid, tUint, tEnum, tUint, tSizei, tPtr, tPtr),
			fn("GetProgramResourceiv", tVoid, tUint, tEnum, tUint, tSizei, tPtr, tSizei, tPtr, tPtr),
			fn("GetProgramResourceLocation", tInt, tUint, tEnum, tStr),
			fn("GetProgramResourceLocationIndex", tInt, tUint, tEnum, tStr),
			fn("ShaderStorageBlockBinding", tVoid, tUint, tUint, tUint),
			fn("TexBufferRange", tVoid, tEnum, tEnum, tUint, tIntptr, tSizeiptr),
			fn("TexStorage2DMultisample", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei, tBool),
			fn("TexStorage3DMultisample", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei, tSizei, tBool),
			fn("TextureView", tVoid, tUint, tEnum, tUint, tEnum, tUint, tUint, tUint, tUint),
			fn("BindVertexBuffer", tVoid, tUint, tUint, tIntptr, tSizei),
			fn("VertexAttribFormat", tVoid, tUint, tInt, tEnum, tBool, tUint),
			fn("VertexAttribIFormat", tVoid, tUint, tInt, tEnum, tUint),
			fn("VertexAttribLFormat", tVoid, tUint, tInt, tEnum, tUint),
			fn("VertexAttribBinding", tVoid, tUint, tUint),
			fn("VertexBindingDivisor", tVoid, tUint, tUint),
			fn("DebugMessageControl", tVoid, tEnum, tEnum, tEnum, tSizei, tPtr, tBool),
			fn("DebugMessageInsert", tVoid, tEnum, tEnum, tUint, tEnum, tSizei, tStr),
			fn("DebugMessageCallback", tVoid, tPtr, tPtr),
			fn("GetDebugMessageLog", tUint, tUint, tSizei, tPtr, tPtr, tPtr, tPtr, tPtr, tPtr),
			fn("PushDebugGroup", tVoid, tEnum, tUint, tSizei, tStr),
			fn("PopDebugGroup", tVoid),
			fn("ObjectLabel", tVoid, tEnum, tUint, tSizei, tStr),
			fn("GetObjectLabel", tVoid, tEnum, tUint, tSizei, tPtr, tPtr),
			fn("ObjectPtrLabel", tVoid, tPtr, tSizei, tStr),
			fn("GetObjectPtrLabel", tVoid, tPtr, tSizei, tPtr, tPtr),
		),
		tier("4.4",
			fn("BufferStorage", tVoid, tEnum, tSizeiptr, tPtr, tBitfield),
			fn("ClearTexImage", tVoid, tUint, tInt, tEnum, tEnum, tPtr),
			fn("ClearTexSubImage", tVoid, tUint, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("BindBuffersBase", tVoid, tEnum, tUint, tSizei, tPtr),
			fn("BindBuffersRange", tVoid, tEnum, tUint, tSizei, tPtr, tPtr, tPtr),
			fn("BindTextures", tVoid, tUint, tSizei, tPtr),
			fn("BindSamplers", tVoid, tUint, tSizei, tPtr),
			fn("BindImageTextures", tVoid, tUint, tSizei, tPtr),
			fn("BindVertexBuffers", tVoid, tUint, tSizei, tPtr, tPtr, tPtr),
		),
		tier("4.5",
			fn("ClipControl", tVoid, tEnum, tEnum),
			fn("CreateTransformFeedbacks", tVoid, tSizei, tPtr),
			fn("TransformFeedbackBufferBase", tVoid, tUint, tUint, tUint),
			fn("TransformFeedbackBufferRange", tVoid, tUint, tUint, tUint, tIntptr, tSizeiptr),
			fn("CreateBuffers", tVoid, tSizei, tPtr),
			fn("NamedBufferStorage", tVoid, tUint, tSizeiptr, tPtr, tBitfield),
			fn("NamedBufferData", tVoid, tUint, tSizeiptr, tPtr, tEnum),
			fn("NamedBufferSubData", tVoid, tUint, tIntptr, tSizeiptr, tPtr),
			fn("CopyNamedBufferSubData", tVoid, tUint, tUint, tIntptr, tIntptr, tSizeiptr),
			fn("ClearNamedBufferData", tVoid, tUint, tEnum, tEnum, tEnum, tPtr),
			fn("MapNamedBuffer", tPtr, tUint, tEnum),
			fn("MapNamedBufferRange", tPtr, tUint, tIntptr, tSizeiptr, tBitfield),
			fn("UnmapNamedBuffer", tBool, tUint),
			fn("FlushMappedNamedBufferRange", tVoid, tUint, tIntptr, tSizeiptr),
			fn("GetNamedBufferParameteriv", tVoid, tUint, tEnum, tPtr),
			fn("GetNamedBufferSubData", tVoid, tUint, tIntptr, tSizeiptr, tPtr),
			fn("CreateFramebuffers", tVoid, tSizei, tPtr),
			fn("NamedFramebufferRenderbuffer", tVoid, tUint, tEnum, tEnum, tUint),
			fn("NamedFramebufferParameteri", tVoid, tUint, tEnum, tInt),
			fn("NamedFramebufferTexture", tVoid, tUint, tEnum, tUint, tInt),
			fn("NamedFramebufferTextureLayer", tVoid, tUint, tEnum, tUint, tInt, tInt),
			fn("NamedFramebufferDrawBuffer", tVoid, tUint, tEnum),
			fn("NamedFramebufferDrawBuffers", tVoid, tUint, tSizei, tPtr),
			fn("NamedFramebufferReadBuffer", tVoid, tUint, tEnum),
			fn("ClearNamedFramebufferiv", tVoid, tUint, tEnum, tInt, tPtr),
			fn("ClearNamedFramebufferfv", tVoid, tUint, tEnum, tInt, tPtr),
			fn("ClearNamedFramebufferfi", tVoid, tUint, tEnum, tInt, tFloat, tInt),
			fn("BlitNamedFramebuffer", tVoid, tUint, tUint, tInt, tInt, tInt, tInt, tInt, tInt, tInt, tInt, tBitfield, tEnum),
			fn("CheckNamedFramebufferStatus", tEnum, tUint, tEnum),
			fn("CreateRenderbuffers", tVoid, tSizei, tPtr),
			fn("NamedRenderbufferStorage", tVoid, tUint, tEnum, tSizei, tSizei),
			fn("NamedRenderbufferStorageMultisample", tVoid, tUint, tSizei, tEnum, tSizei, tSizei),
			fn("CreateTextures", tVoid, tEnum, tSizei, tPtr),
			fn("TextureBuffer", tVoid, tUint, tEnum, tUint),
			fn("TextureStorage1D", tVoid, tUint, tSizei, tEnum, tSizei),
			fn("TextureStorage2D", tVoid, tUint, tSizei, tEnum, tSizei, tSizei),
			fn("TextureStorage3D", tVoid, tUint, tSizei, tEnum, tSizei, tSizei, tSizei),
			fn("TextureSubImage2D", tVoid, tUint, tInt, tInt, tInt, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("TextureSubImage3D", tVoid, tUint, tInt, tInt, tInt, tInt, tSizei, tSizei, tSizei, tEnum, tEnum, tPtr),
			fn("TextureParameterf", tVoid, tUint, tEnum, tFloat),
			fn("TextureParameteri", tVoid, tUint, tEnum, tInt),
			fn("TextureParameteriv", tVoid, tUint, tEnum, tPtr),
			fn("GenerateTextureMipmap", tVoid, tUint),
			fn("BindTextureUnit", tVoid, tUint, tUint),
			fn("GetTextureImage", tVoid, tUint, tInt, tEnum, tEnum, tSizei, tPtr),
			fn("GetTextureLevelParameteriv", tVoid, tUint, tInt, tEnum, tPtr),
			fn("GetTextureParameteriv", tVoid, tUint, tEnum, tPtr),
			fn("CreateVertexArrays", tVoid, tSizei, tPtr),
			fn("DisableVertexArrayAttrib", tVoid, tUint, tUint),
			fn("EnableVertexArrayAttrib", tVoid, tUint, tUint),
			fn("VertexArrayElementBuffer", tVoid, tUint, tUint),
			fn("VertexArrayVertexBuffer", tVoid, tUint, tUint, tUint, tIntptr, tSizei),
			fn("VertexArrayAttribBinding", tVoid, tUint, tUint, tUint),
			fn("VertexArrayAttribFormat", tVoid, tUint, tUint, tInt, tEnum, tBool, tUint),
			fn("VertexArrayAttribIFormat", tVoid, tUint, tUint, tInt, tEnum, tUint),
			fn("VertexArrayBindingDivisor", tVoid, tUint, tUint, tUint),
			fn("CreateSamplers", tVoid, tSizei, tPtr),
			fn("CreateProgramPipelines", tVoid, tSizei, tPtr),
			fn("CreateQueries", tVoid, tEnum, tSizei, tPtr),
			fn("MemoryBarrierByRegion", tVoid, tBitfield),
			fn("GetGraphicsResetStatus", tEnum),
			fn("ReadnPixels", tVoid, tInt, tInt, tSizei, tSizei, tEnum, tEnum, tSizei, tPtr),
			fn("GetnUniformfv", tVoid, tUint, tInt, tSizei, tPtr),
			fn("TextureBarrier", tVoid),
		),
		tier("4.6",
			fn("SpecializeShader", tVoid, tUint, tStr, tUint, tPtr, tPtr),
			fn("MultiDrawArraysIndirectCount", tVoid, tEnum, tPtr, tIntptr, tSizei, tSizei),
			fn("MultiDrawElementsIndirectCount", tVoid, tEnum, tEnum, tPtr, tIntptr, tSizei, tSizei),
			fn("PolygonOffsetClamp", tVoid, tFloat, tFloat, tFloat),
		),
	}
}
